package build

import "strings"

var (
	Version = "dev"
	AppName = "Whirl"
	Slug    = ""
)

func init() {
	if Slug == "" {
		Slug = strings.ToLower(AppName)
	}
}
