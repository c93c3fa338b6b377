// Package sshexec runs commands on a remote host through the local ssh and
// scp binaries.
//
// It deliberately shells out rather than speaking the SSH protocol directly,
// so host aliases, ProxyJump, agent forwarding, and everything else in the
// user's ssh_config keep working. Stderr from a failed command is folded
// into the returned error.
package sshexec
