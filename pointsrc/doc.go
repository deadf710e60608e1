// Package pointsrc implements the point-file loader collaborator named
// in §6: a minimal, line-oriented format with no header and no strict
// grammar, designed to be typed by hand or produced by the crudest
// possible script. Comment and blank lines are ignored; a line that
// doesn't parse is silently skipped rather than rejected, since a
// malformed line is as likely to be a stray note as an error.
package pointsrc
