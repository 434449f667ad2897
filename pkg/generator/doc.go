// Package generator turns definitions into asset files.
//
// For every definition the Generator stages the namespace's missing
// asset directories and the default lang file, then dispatches each
// required kind through the kinds table. Each kind renders its templates
// and queues a translation key. Staged writes are applied through a
// synthfs pipeline at the end of the run. The queue is returned on the
// Result for the lang package to apply.
//
// A path component that exists but is not a directory is a conflict.
// The conflict is recorded and no further directories of that namespace
// are created. Its definitions are still generated, so a file aimed at a
// missing directory fails the run with FILE_WRITE.
package generator
