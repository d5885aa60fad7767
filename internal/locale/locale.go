// Package locale provides the display strings of Path of Heroes.
//
// Locale selection only changes text. Nothing in this package influences
// game rules or numbers.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/samdwyer/pathofheroes/internal/gamedata"
)

//go:embed strings.json
var stringsFS embed.FS

// Key names a display string.
type Key string

const (
	GameTitle       Key = "gameTitle"
	PlayButton      Key = "playButton"
	CharSelectTitle Key = "charSelectTitle"
	StartGameButton Key = "startGameButton"
	AttackButton    Key = "attackButton"
	DefendButton    Key = "defendButton"
	SkillButton     Key = "skillButton"
	ItemsButton     Key = "itemsButton"
	FleeButton      Key = "fleeButton"
	YouWin          Key = "youWin"
	YouLose         Key = "youLose"
	FloorCleared    Key = "floorCleared"
	RewardTitle     Key = "rewardTitle"
	RewardHeal      Key = "rewardHeal"
	RewardAtk       Key = "rewardAtk"
	RewardDef       Key = "rewardDef"
	RewardMaxHP     Key = "rewardMaxHp"
	RewardMaxRes    Key = "rewardMaxResource"
	RewardItem      Key = "rewardItem"
	LevelUp         Key = "levelUp"
	Floor           Key = "floor"
	Level           Key = "level"
	Gold            Key = "gold"
	BasicAttack     Key = "basicAttack"
	Strike          Key = "strike"
	Defending       Key = "defending"
	Fled            Key = "fled"
	FleeFailed      Key = "fleeFailed"
	Drinks          Key = "drinks"
	NotEnough       Key = "notEnough"
	CannotFlee      Key = "cannotFlee"
	NoItem          Key = "noItem"
	FullHealth      Key = "fullHealth"
	BattleBegins    Key = "battleBegins"
)

// supported lists the catalogs in strings.json. The first entry is the fallback.
var supported = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(supported)

// Catalog resolves keys to strings for one language.
type Catalog struct {
	lang    string
	strings map[Key]string
	base    map[Key]string // English, used for keys missing from strings
}

// Load returns the catalog that best matches pref. pref may be a BCP 47 tag
// ("ar", "en-GB"), a POSIX locale ("ar_EG.UTF-8") or an Accept-Language list.
// Unsupported or empty preferences fall back to English.
func Load(pref string) (*Catalog, error) {
	all, err := loadAll()
	if err != nil {
		return nil, err
	}

	tag := Match(pref)
	base, _ := tag.Base()
	lang := base.String()
	strs, ok := all[lang]
	if !ok {
		return nil, fmt.Errorf("no strings for %q", lang)
	}
	return &Catalog{lang: lang, strings: strs, base: all[gamedata.DefaultLang]}, nil
}

// MustLoad loads a catalog, panicking on error.
func MustLoad(pref string) *Catalog {
	c, err := Load(pref)
	if err != nil {
		panic(err)
	}
	return c
}

// Match returns the supported language closest to pref.
func Match(pref string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(normalize(pref))
	if err != nil || len(tags) == 0 {
		return supported[0]
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// normalize rewrites POSIX locales inside an Accept-Language list as BCP 47
// tags. The codeset is cut from the tag of each entry only, so q-values keep
// their decimals.
func normalize(pref string) string {
	parts := strings.Split(strings.TrimSpace(pref), ",")
	for i, part := range parts {
		tag, params, weighted := strings.Cut(strings.TrimSpace(part), ";")
		if j := strings.IndexByte(tag, '.'); j >= 0 {
			tag = tag[:j] // e.g. ".UTF-8"
		}
		tag = strings.ReplaceAll(tag, "_", "-")
		if weighted {
			tag += ";" + params
		}
		parts[i] = tag
	}
	return strings.Join(parts, ",")
}

func loadAll() (map[string]map[Key]string, error) {
	content, err := stringsFS.ReadFile("strings.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded file strings.json: %w", err)
	}
	var all map[string]map[Key]string
	if err := json.Unmarshal(content, &all); err != nil {
		return nil, fmt.Errorf("failed to parse JSON from strings.json: %w", err)
	}
	return all, nil
}

// Lang returns the catalog's language code, e.g. "en".
func (c *Catalog) Lang() string { return c.lang }

// T returns the string for key formatted with args.
// Unknown keys render as the key itself so missing text is visible.
func (c *Catalog) T(key Key, args ...any) string {
	tmpl, ok := c.strings[key]
	if !ok {
		if tmpl, ok = c.base[key]; !ok {
			return string(key)
		}
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Name picks the display name for this catalog's language.
func (c *Catalog) Name(n gamedata.Names) string { return n.In(c.lang) }

// RTL reports whether the language is written right to left.
func (c *Catalog) RTL() bool { return c.lang == "ar" }
