package model

import "strings"

// CleanTitle strips the surrounding quotes some uploaders put around titles.
func CleanTitle(title string) string {
	return strings.Trim(title, `"`)
}
