package credits

import "fichahub/pkg/textutil"

// Icon slugs follow the lucide icon names the front end already ships.
// Keys are folded discipline names; anything unknown falls back to the
// placeholder.
const iconPlaceholder = "BookOpen"

var iconBySlug = map[string]string{
	"lingua portuguesa":        "BookOpen",
	"literatura":               "BookOpen",
	"redacao":                  "BookOpen",
	"lingua inglesa":           "Languages",
	"lingua espanhola":         "Languages",
	"arte":                     "Palette",
	"musica":                   "Music",
	"filosofia":                "Brain",
	"sociologia":               "Globe",
	"educacao fisica":          "Activity",
	"biologia":                 "Microscope",
	"ciencias":                 "Microscope",
	"fisica":                   "Beaker",
	"quimica":                  "Beaker",
	"matematica":               "Calculator",
	"geografia":                "MapPin",
	"historia":                 "History",
	"tecnologia":               "Laptop",
	"pensamento computacional": "Laptop",
	"conversas pedagogicas":    "Brain",
}

// iconFor resolves the icon slug for a discipline name.
func iconFor(discipline string) string {
	if slug, ok := iconBySlug[textutil.Fold(discipline)]; ok {
		return slug
	}
	return iconPlaceholder
}
