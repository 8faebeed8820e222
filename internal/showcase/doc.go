// Package showcase holds the presentation rules of a projects section that do
// not depend on any rendering surface: the anchor identifier derived from the
// section title, the media shown for a selected project, and the action
// buttons offered for it.
//
// Every function here is pure so the web views and the terminal browser agree
// on what a project looks like.
package showcase
