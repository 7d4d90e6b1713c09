package dto

import (
	"net/http"
	"reception/internal/domains/navigation/model"
	"reception/shared/constant"
)

type ResolveRequest struct {
	Path string
}

func (r *ResolveRequest) FromRequest(req *http.Request) {
	r.Path = req.URL.Query().Get(constant.RequestParamPath)
}

type SidebarEntry struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type ShellResponse struct {
	Base    string         `json:"base"`
	Active  string         `json:"active"`
	Title   string         `json:"title"`
	Sidebar []SidebarEntry `json:"sidebar"`
}

func (s *ShellResponse) FromModel(def model.Definition, base, active string) {
	s.Base = base
	s.Active = active
	s.Sidebar = make([]SidebarEntry, len(def.Sections))

	for i, section := range def.Sections {
		s.Sidebar[i] = SidebarEntry{
			ID:     section.ID,
			Label:  section.Label,
			Icon:   section.Icon,
			Href:   section.Href(base),
			Active: section.ID == active,
		}

		if section.ID == active {
			s.Title = section.Label
		}
	}
}
