// Package relocate implements the repository relocation workflow: scanning a
// source root for git repositories, copying each one under a destination root
// with its .gitignore entries excluded, and removing the source unless copy
// mode is requested. Subpackages provide the ignore file loader, the
// directory inspector, the recursive tree copier, and the shared filesystem
// abstractions they are built on.
package relocate
