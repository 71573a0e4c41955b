package osxattr

import "golang.org/x/sys/unix"

// errNoAttr is returned by getxattr for a missing attribute.
const errNoAttr = unix.ENOATTR
