package platform

import (
	"fmt"
	"slices"
)

// Spec is one target size in the catalogue.
type Spec struct {
	ID          string
	Name        string
	TargetPx    int
	Description string
}

// DisplaySize returns the size as "WxH".
func (s Spec) DisplaySize() string {
	return fmt.Sprintf("%dx%d", s.TargetPx, s.TargetPx)
}

// Filename returns the download name, profile-<id>-<W>x<H>.png.
func (s Spec) Filename() string {
	return fmt.Sprintf("profile-%s-%s.png", s.ID, s.DisplaySize())
}

var catalog = []Spec{
	{ID: "instagram", Name: "Instagram", TargetPx: 320, Description: "Square profile picture"},
	{ID: "instagram-hd", Name: "Instagram HD", TargetPx: 640, Description: "High quality profile"},
	{ID: "linkedin", Name: "LinkedIn", TargetPx: 400, Description: "Professional profile"},
	{ID: "linkedin-hd", Name: "LinkedIn HD", TargetPx: 800, Description: "High quality professional"},
	{ID: "facebook", Name: "Facebook", TargetPx: 170, Description: "Profile picture"},
	{ID: "facebook-hd", Name: "Facebook HD", TargetPx: 320, Description: "High quality profile"},
	{ID: "discord", Name: "Discord", TargetPx: 128, Description: "Avatar icon"},
	{ID: "discord-hd", Name: "Discord HD", TargetPx: 512, Description: "High quality avatar"},
	{ID: "whatsapp", Name: "WhatsApp", TargetPx: 640, Description: "Profile photo"},
	{ID: "twitter", Name: "Twitter/X", TargetPx: 400, Description: "Profile image"},
}

// Catalog returns a copy of the built-in catalogue in display order.
func Catalog() []Spec {
	return slices.Clone(catalog)
}

// Lookup finds a catalogue entry by ID.
func Lookup(id string) (Spec, bool) {
	i := slices.IndexFunc(catalog, func(s Spec) bool { return s.ID == id })
	if i < 0 {
		return Spec{}, false
	}
	return catalog[i], true
}
