package dto

type UpdateThemeRequest struct {
	ThemeClass *string `json:"theme_class" binding:"required"`
}

type SettingsResponse struct {
	ThemeClass string `json:"theme_class"`
}

type ThemesResponse struct {
	Default string   `json:"default"`
	Current string   `json:"current"`
	Themes  []string `json:"themes"`
}
