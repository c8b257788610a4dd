package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryTag is a pokemon type name used for filtering and color-coded display.
type CategoryTag string

func (t CategoryTag) String() string {
	return string(t)
}

const (
	TagFire     CategoryTag = "fire"
	TagWater    CategoryTag = "water"
	TagGrass    CategoryTag = "grass"
	TagElectric CategoryTag = "electric"
	TagPsychic  CategoryTag = "psychic"
	TagIce      CategoryTag = "ice"
	TagDragon   CategoryTag = "dragon"
	TagDark     CategoryTag = "dark"
	TagFairy    CategoryTag = "fairy"
	TagNormal   CategoryTag = "normal"
	TagFighting CategoryTag = "fighting"
	TagFlying   CategoryTag = "flying"
	TagPoison   CategoryTag = "poison"
	TagGround   CategoryTag = "ground"
	TagRock     CategoryTag = "rock"
	TagBug      CategoryTag = "bug"
	TagGhost    CategoryTag = "ghost"
	TagSteel    CategoryTag = "steel"
	TagDeath    CategoryTag = "death"
	TagTime     CategoryTag = "time"
	TagLight    CategoryTag = "light"
	TagCosmic   CategoryTag = "cosmic"
	TagSound    CategoryTag = "sound"
	TagSpace    CategoryTag = "space"
)

// CategoryTags is the fixed set of toggles, in display order.
var CategoryTags = []CategoryTag{
	TagFire, TagWater, TagGrass, TagElectric, TagPsychic, TagIce,
	TagDragon, TagDark, TagFairy, TagNormal, TagFighting, TagFlying,
	TagPoison, TagGround, TagRock, TagBug, TagGhost, TagSteel,
	TagDeath, TagTime, TagLight, TagCosmic, TagSound, TagSpace,
}

// UnknownTagColor is used for tags the color table does not know.
const UnknownTagColor = "#68A090"

var tagColors = map[CategoryTag]string{
	TagFire:     "#F08030",
	TagWater:    "#6890F0",
	TagGrass:    "#78C850",
	TagElectric: "#F8D030",
	TagPsychic:  "#F85888",
	TagIce:      "#98D8D8",
	TagDragon:   "#7038F8",
	TagDark:     "#705848",
	TagFairy:    "#EE99AC",
	TagNormal:   "#A8A878",
	TagFighting: "#C03028",
	TagFlying:   "#A890F0",
	TagPoison:   "#A040A0",
	TagGround:   "#E0C068",
	TagRock:     "#B8A038",
	TagBug:      "#A8B820",
	TagGhost:    "#705898",
	TagSteel:    "#B8B8D0",
	TagDeath:    "#4B0082",
	TagTime:     "#00CED1",
	TagLight:    "#FFFFE0",
	TagCosmic:   "#9370DB",
	TagSound:    "#FF6347",
	TagSpace:    "#778899",
}

// Known reports whether the tag is part of the color table.
func (t CategoryTag) Known() bool {
	_, ok := tagColors[t]
	return ok
}

// Color returns the presentation color of the tag. Unknown tags are a gap in
// the table, not an error, and get UnknownTagColor.
func (t CategoryTag) Color() string {
	if color, ok := tagColors[t]; ok {
		return color
	}
	return UnknownTagColor
}

// Label returns the tag as shown on toggles and badges ("fire" -> "Fire").
func (t CategoryTag) Label() string {
	return cases.Title(language.Und).String(string(t))
}

// ParseCategoryTag normalizes user input into a tag. The second result is
// false for tags outside the color table.
func ParseCategoryTag(s string) (CategoryTag, bool) {
	tag := CategoryTag(strings.ToLower(strings.TrimSpace(s)))
	return tag, tag.Known()
}
