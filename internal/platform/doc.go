// Package platform provides the filesystem operations the registry writer
// needs: atomic replacement of a file and permission handling that is a
// no-op on Windows.
package platform
