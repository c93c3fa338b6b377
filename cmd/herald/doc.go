// Herald publishes a single local HTML page to a configured destination.
//
// The destination is chosen by the active_provider value in herald's config
// file: "scp" copies the page onto a remote host over ssh, "s3" uploads it
// to an S3 bucket. Either way the page lands at <slug>/index.html under the
// destination root, so a slug maps to one stable URL.
//
// Usage:
//
//	herald publish page.html demo       # publish page.html under slug demo
//	herald config init                  # create the config scaffold
//	herald config set scp.host user@web.example.com
//	herald providers list               # show providers and their fields
//	herald providers doctor             # check the active provider end to end
//
// See https://github.com/dshills/herald for full documentation.
package main
