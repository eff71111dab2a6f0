package instagram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codeGROOVE-dev/gramscope/report"
)

const profileJSON = `{
  "data": {
    "user": {
      "id": "123456789",
      "full_name": "Jane Doe",
      "biography": "Photographer. Workshops across Europe, bookings open via email.",
      "external_url": "https://janedoe.example",
      "profile_pic_url_hd": "https://cdn.example/avatar_hd.jpg",
      "profile_pic_url": "https://cdn.example/avatar.jpg",
      "profile_pic_id": "31415926535_123456789",
      "is_private": false,
      "is_verified": true,
      "is_business_account": false,
      "is_professional_account": true,
      "pronouns": ["she", "her"],
      "bio_links": [{"url": "https://janedoe.example/shop"}, {"url": ""}],
      "edge_followed_by": {"count": 25000},
      "edge_follow": {"count": 400},
      "edge_highlight_reels": {"count": 4},
      "edge_owner_to_timeline_media": {
        "count": 320,
        "edges": [
          {"node": {"taken_at_timestamp": 1700000000}},
          {"node": {"taken_at_timestamp": 1500000000}},
          {"node": {"taken_at_timestamp": 1650000000}}
        ]
      }
    }
  }
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	client, err := New(context.Background())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	client.webBase = srv.URL
	client.mobileBase = srv.URL
	client.httpClient = srv.Client()
	return client, srv.Close
}

func TestFetchProfile(t *testing.T) {
	client, closeSrv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("username") != "jane_doe" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("x-ig-app-id") == "" {
			t.Error("missing x-ig-app-id header")
		}
		w.Write([]byte(profileJSON)) //nolint:errcheck // test server
	}))
	defer closeSrv()

	p, err := client.FetchProfile(context.Background(), "jane_doe")
	if err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}

	if p.UserID != "123456789" || p.FullName != "Jane Doe" {
		t.Errorf("identity fields wrong: %+v", p)
	}
	if !p.IsVerified || p.IsPrivate {
		t.Errorf("flags wrong: verified=%v private=%v", p.IsVerified, p.IsPrivate)
	}
	if p.Followers != 25000 || p.Following != 400 || p.Posts != 320 {
		t.Errorf("counts wrong: %d/%d/%d", p.Followers, p.Following, p.Posts)
	}
	if p.AvatarURL != "https://cdn.example/avatar_hd.jpg" {
		t.Errorf("AvatarURL = %q, want the HD variant", p.AvatarURL)
	}
	if len(p.BioLinks) != 1 || p.BioLinks[0] != "https://janedoe.example/shop" {
		t.Errorf("BioLinks = %v, want the single non-empty link", p.BioLinks)
	}
	if !p.HasHighlights {
		t.Error("HasHighlights = false, want true")
	}
	// Oldest timeline edge is 1500000000 (2017-07-14 UTC).
	if p.FirstPostDate != "2017-07-14 02:40:00" {
		t.Errorf("FirstPostDate = %q", p.FirstPostDate)
	}
	if p.EstimatedCreation != "~July 2017" {
		t.Errorf("EstimatedCreation = %q", p.EstimatedCreation)
	}
}

func TestFetchProfileNotFound(t *testing.T) {
	client, closeSrv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer closeSrv()

	p, err := client.FetchProfile(context.Background(), "no_such_user")
	if !errors.Is(err, report.ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
	if p != nil {
		t.Errorf("profile = %+v, want nil on not-found", p)
	}
}

// Some deactivated accounts return 200 with a null user payload.
func TestFetchProfileNullUser(t *testing.T) {
	client, closeSrv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"user":null}}`)) //nolint:errcheck // test server
	}))
	defer closeSrv()

	if _, err := client.FetchProfile(context.Background(), "gone"); !errors.Is(err, report.ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestFetchProfileRateLimited(t *testing.T) {
	client, closeSrv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer closeSrv()

	if _, err := client.FetchProfile(context.Background(), "anyone"); !errors.Is(err, report.ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
}

func TestFetchContact(t *testing.T) {
	client, closeSrv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		if r.PostForm.Get("signed_body") == "" {
			t.Error("missing signed_body")
		}
		w.Write([]byte(`{"obfuscated_email":"j***n@g***l.com","obfuscated_phone":"+33 6 ** ** ** 21"}`)) //nolint:errcheck // test server
	}))
	defer closeSrv()

	contact, err := client.FetchContact(context.Background(), "jane_doe")
	if err != nil {
		t.Fatalf("FetchContact: %v", err)
	}
	if contact.Email != "j***n@g***l.com" || contact.Phone != "+33 6 ** ** ** 21" {
		t.Errorf("contact = %+v", contact)
	}
}

func TestFetchContactFailure(t *testing.T) {
	client, closeSrv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer closeSrv()

	if _, err := client.FetchContact(context.Background(), "jane_doe"); err == nil {
		t.Fatal("err = nil, want failure for non-200 status")
	}
}

func TestFetchExtra(t *testing.T) {
	client, closeSrv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/users/123456789/info/":
			w.Write([]byte(`{"user":{"public_email":"biz@example.com","city_name":"Lisbon","account_type":2}}`)) //nolint:errcheck // test server
		default:
			http.NotFound(w, r)
		}
	}))
	defer closeSrv()

	extra, err := client.FetchExtra(context.Background(), "jane_doe", "123456789")
	if err != nil {
		t.Fatalf("FetchExtra: %v", err)
	}
	if extra == nil {
		t.Fatal("extra = nil, want populated")
	}
	if extra.PublicEmail != "biz@example.com" || extra.City != "Lisbon" || extra.AccountType != 2 {
		t.Errorf("extra = %+v", extra)
	}
}

// The search endpoint is fuzzy: results for a different username must be
// discarded rather than attributed to the subject.
func TestFetchExtraSearchCrossCheck(t *testing.T) {
	client, closeSrv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/users/search/" {
			w.Write([]byte(`{"users":[{"username":"jane_doe2","account_type":3}]}`)) //nolint:errcheck // test server
			return
		}
		http.NotFound(w, r)
	}))
	defer closeSrv()

	extra, err := client.FetchExtra(context.Background(), "jane_doe", "")
	if err != nil {
		t.Fatalf("FetchExtra: %v", err)
	}
	if extra != nil {
		t.Errorf("extra = %+v, want nil when nothing matched", extra)
	}
}
