// Package document patches the small structured files a Fabric template
// ships with. JSON edits go through gjson/sjson and touch only the bytes of
// the addressed value; properties files are edited line by line so comments
// and layout survive.
package document
