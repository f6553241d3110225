package model

import (
	"errors"
	"net/url"
	"slices"
	"strings"
)

// Enumerations of the settings fields.
const (
	WallpaperCustom = "custom"
	WallpaperAPI    = "api"

	CardGlass   = "glass"
	CardSolid   = "solid"
	CardMinimal = "minimal"

	IconCircle  = "circle"
	IconSquare  = "square"
	IconRounded = "rounded"

	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Limits for the numeric background settings.
const (
	MaxBackgroundBlur    = 20
	MaxBackgroundOverlay = 0.9
)

// ThemeColors lists the accepted accent color keys.
var ThemeColors = []string{
	"pink", "rose", "violet", "blue", "sky", "cyan", "emerald", "lime", "amber", "orange",
}

// DefaultWallpaperAPIs are the random wallpaper endpoints a fresh install knows.
var DefaultWallpaperAPIs = []string{
	"https://imgapi.xl0408.top/index.php",
	"https://t.alcy.cc/fj",
	"https://t.alcy.cc/",
	"https://www.dmoe.cc/random.php",
}

// ErrInvalidWallpaperAPI is returned when a wallpaper API is not an http(s) URL.
var ErrInvalidWallpaperAPI = errors.New("wallpaper API must be a valid http:// or https:// URL")

// Settings holds the user's start page preferences.
type Settings struct {
	WallpaperMode      string   `json:"wallpaperMode"`
	BackgroundImage    string   `json:"backgroundImage"`
	WallpaperAPIs      []string `json:"wallpaperApis"`
	ActiveWallpaperAPI string   `json:"activeWallpaperApi"`
	BackgroundBlur     int      `json:"backgroundBlur"`
	BackgroundOverlay  float64  `json:"backgroundOverlay"`
	CardStyle          string   `json:"cardStyle"`
	IconShape          string   `json:"iconShape"`
	ShowSearchBar      bool     `json:"showSearchBar"`
	SearchEngine       string   `json:"searchEngine"`
	ThemeMode          string   `json:"themeMode"`
	ThemeColor         string   `json:"themeColor"`
}

// DefaultSettings returns the settings of a fresh install (the Sakura look).
func DefaultSettings() Settings {
	return Settings{
		WallpaperMode:      WallpaperCustom,
		BackgroundImage:    "https://images.unsplash.com/photo-1477346611705-65d1883cee1e?q=80&w=2070&auto=format&fit=crop",
		WallpaperAPIs:      slices.Clone(DefaultWallpaperAPIs),
		ActiveWallpaperAPI: DefaultWallpaperAPIs[0],
		BackgroundBlur:     6,
		BackgroundOverlay:  0.15,
		CardStyle:          CardGlass,
		IconShape:          IconCircle,
		ShowSearchBar:      true,
		SearchEngine:       "bing",
		ThemeMode:          ThemeSystem,
		ThemeColor:         "pink",
	}
}

// Normalize replaces missing or out-of-range fields with defaults and returns
// the result. Settings written by older versions load through here.
func (s Settings) Normalize() Settings {
	d := DefaultSettings()

	if !slices.Contains([]string{WallpaperCustom, WallpaperAPI}, s.WallpaperMode) {
		s.WallpaperMode = d.WallpaperMode
	}
	if s.WallpaperAPIs == nil {
		s.WallpaperAPIs = d.WallpaperAPIs
	}
	if s.ActiveWallpaperAPI == "" {
		s.ActiveWallpaperAPI = d.ActiveWallpaperAPI
	}
	s.BackgroundBlur = min(max(s.BackgroundBlur, 0), MaxBackgroundBlur)
	s.BackgroundOverlay = min(max(s.BackgroundOverlay, 0), MaxBackgroundOverlay)
	if !slices.Contains([]string{CardGlass, CardSolid, CardMinimal}, s.CardStyle) {
		s.CardStyle = d.CardStyle
	}
	if !slices.Contains([]string{IconCircle, IconSquare, IconRounded}, s.IconShape) {
		s.IconShape = d.IconShape
	}
	if _, ok := SearchEngines[s.SearchEngine]; !ok {
		s.SearchEngine = d.SearchEngine
	}
	if !slices.Contains([]string{ThemeLight, ThemeDark, ThemeSystem}, s.ThemeMode) {
		s.ThemeMode = d.ThemeMode
	}
	if !slices.Contains(ThemeColors, s.ThemeColor) {
		s.ThemeColor = d.ThemeColor
	}
	return s
}

// BackgroundURL returns the wallpaper that should be shown.
func (s Settings) BackgroundURL() string {
	if s.WallpaperMode == WallpaperAPI && s.ActiveWallpaperAPI != "" {
		return s.ActiveWallpaperAPI
	}
	return s.BackgroundImage
}

// AddWallpaperAPI adds rawURL to the API list, makes it active and switches
// the wallpaper mode to API. Adding an existing URL returns s unchanged.
func AddWallpaperAPI(s Settings, rawURL string) (Settings, error) {
	api := strings.TrimSpace(rawURL)
	if !isWebURL(api) {
		return s, ErrInvalidWallpaperAPI
	}
	if slices.Contains(s.WallpaperAPIs, api) {
		return s, nil
	}

	s.WallpaperAPIs = append(slices.Clone(s.WallpaperAPIs), api)
	s.ActiveWallpaperAPI = api
	s.WallpaperMode = WallpaperAPI
	return s, nil
}

// RemoveWallpaperAPI drops api from the list. If it was the active one, the
// first remaining API becomes active.
func RemoveWallpaperAPI(s Settings, api string) Settings {
	remaining := slices.DeleteFunc(slices.Clone(s.WallpaperAPIs), func(a string) bool {
		return a == api
	})
	if api == s.ActiveWallpaperAPI && len(remaining) > 0 {
		s.ActiveWallpaperAPI = remaining[0]
	}
	s.WallpaperAPIs = remaining
	return s
}

// isWebURL reports whether raw is an absolute http(s) URL with a host.
func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
