package entity

import "github.com/google/uuid"

// View is the top-level screen the session is on. Routing is modeled as a
// finite state held by the session, not as URLs.
type View string

const (
	ViewHome          View = "HOME"
	ViewArtists       View = "ARTISTS"
	ViewSearch        View = "SEARCH"
	ViewAIZone        View = "AI_ZONE"
	ViewEvents        View = "EVENTS"
	ViewMyPage        View = "MYPAGE"
	ViewAdmin         View = "ADMIN"
	ViewSearchResults View = "SEARCH_RESULTS"
	ViewCompany       View = "COMPANY"
	ViewTerms         View = "TERMS"
	ViewPrivacy       View = "PRIVACY"
	ViewSupport       View = "SUPPORT"
)

// IsValid checks if the View is a valid value.
func (v View) IsValid() bool {
	switch v {
	case ViewHome, ViewArtists, ViewSearch, ViewAIZone, ViewEvents, ViewMyPage,
		ViewAdmin, ViewSearchResults, ViewCompany, ViewTerms, ViewPrivacy, ViewSupport:
		return true
	default:
		return false
	}
}

// IsFooterPage reports whether the view is one of the legal/footer pages that
// remember the view they were opened from.
func (v View) IsFooterPage() bool {
	switch v {
	case ViewCompany, ViewTerms, ViewPrivacy, ViewSupport:
		return true
	default:
		return false
	}
}

// MyPageView is the nested state inside the MyPage view.
type MyPageView string

const (
	MyPageDashboard   MyPageView = "DASHBOARD"
	MyPageEditProfile MyPageView = "EDIT_PROFILE"
	MyPageChatHistory MyPageView = "CHAT_HISTORY"
	MyPageManagePlan  MyPageView = "MANAGE_PLAN"
)

// ViewState is the complete navigation state of one session: the active view,
// the nested my-page subview, detail selections and in-progress creation
// flags. At most one detail selection is populated at a time.
type ViewState struct {
	Active           View       `json:"active"`                       // Current top-level view.
	Previous         *View      `json:"previous,omitempty"`           // View to return to from a footer page.
	MyPage           MyPageView `json:"my_page"`                      // Nested my-page subview.
	SelectedArtistID *uuid.UUID `json:"selected_artist_id,omitempty"` // Open artist detail, if any.
	SelectedTattooID *uuid.UUID `json:"selected_tattoo_id,omitempty"` // Open tattoo detail, if any.
	SelectedEventID  *uuid.UUID `json:"selected_event_id,omitempty"`  // Open event detail, if any.
	CreatingEvent    bool       `json:"creating_event"`               // Event creation form open.
	UploadingTattoo  bool       `json:"uploading_tattoo"`             // Tattoo upload form open.
	SearchQuery      string     `json:"search_query,omitempty"`       // Query backing the search-results view.
}

// NewViewState returns the initial navigation state.
func NewViewState() ViewState {
	return ViewState{Active: ViewHome, MyPage: MyPageDashboard}
}

// ClearSelections drops all detail selections, creation flags and the search
// query. Navigation always runs this so stale selections cannot leak into an
// unrelated view.
func (s *ViewState) ClearSelections() {
	s.SelectedArtistID = nil
	s.SelectedTattooID = nil
	s.SelectedEventID = nil
	s.CreatingEvent = false
	s.UploadingTattoo = false
	s.SearchQuery = ""
}
