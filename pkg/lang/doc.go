// Package lang keeps per-namespace language files in step with the
// translation keys produced by a generation run.
//
// The Generator fills a Queue with keys per namespace. The Updater then
// visits every JSON file in each namespace's lang directory and appends
// the keys that are missing, with an empty string as the value. Existing
// entries keep their values and their position in the file.
package lang
