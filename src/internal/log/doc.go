// Package log provides simple leveled logging for openwrt-ifstatus.
//
// Messages are written with a colored level prefix: DEBUG (only in verbose
// mode), INFO, WARN and ERROR. Errors go to stderr, everything else to stdout
// unless SetForceStdErr is enabled, which the CLI does so that status output
// on stdout stays machine readable.
//
// # Example Usage
//
//	log.SetVerbose(true)
//	log.Debugf("Running %s %v", binary, args)
//	log.Warnf("Remote command failed with exit code %d", code)
//
// All functions are safe for concurrent use.
package log
