// Package utils provides small helpers shared across openwrt-ifstatus:
// home-directory expansion and relative path resolution for key and
// known_hosts files, and close-with-warning for transports.
package utils
