// internal/adapters/http_server/pages.go
package httpserver

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"hbnb_web/internal/app"
	"hbnb_web/internal/domain"
	"hbnb_web/internal/web"
)

const msgListingFailed = "Unable to load available places."

// Pages holds the controllers for every page the site serves. All
// dependencies are explicit; nothing reaches for package globals.
type Pages struct {
	API       domain.APIClient
	Session   *app.Session
	Assembler *app.Assembler
	Gate      *app.ReviewGate
	Login     *app.LoginFlow
	Render    *web.Renderer
	Log       zerolog.Logger
}

func (s *Server) MountPages(p *Pages) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", p.index)
	s.mux.Get("/index.html", p.index)
	s.mux.Get("/place", p.place)
	s.mux.Get("/login", p.loginForm)
	s.mux.Post("/login", p.login)
	s.mux.Get("/logout", p.logout)
	s.mux.Post("/reviews", p.postReview)
}

// index lists all places. The tier filter is a pure predicate over the cards
// this same request already fetched; picking a tier re-submits the form but
// adds no backend call beyond the listing fetch every page load does.
func (p *Pages) index(w http.ResponseWriter, r *http.Request) {
	view := domain.ListingPage{
		LoggedIn: p.Session.IsLoggedIn(r),
		Tier:     r.URL.Query().Get("max_price"),
		Tiers:    app.PriceTiers,
	}
	if view.Tier == "" {
		view.Tier = "all"
	}

	raw, err := p.API.ListPlaces(r.Context(), p.Session.Token(r))
	if err != nil {
		p.Log.Warn().Err(err).Msg("listing fetch failed")
		view.Err = msgListingFailed
		p.Render.Page(w, "index", view)
		return
	}
	view.Cards = app.ApplyTier(view.Tier, app.MapCards(raw))
	p.Render.Page(w, "index", view)
}

func (p *Pages) place(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("place_id")
	page := p.Assembler.Assemble(r.Context(), placeID, p.Session.Token(r))
	page.LoggedIn = p.Session.IsLoggedIn(r)
	page.Flash = r.URL.Query().Get("flash")
	p.Render.Page(w, "place", page)
}

func (p *Pages) loginForm(w http.ResponseWriter, r *http.Request) {
	p.Render.Page(w, "login", domain.LoginPage{LoggedIn: p.Session.IsLoggedIn(r)})
}

func (p *Pages) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	creds := app.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	tok, msg := p.Login.Login(r.Context(), creds)
	if tok == "" {
		p.Render.Page(w, "login", domain.LoginPage{Email: creds.Email, Err: msg})
		return
	}
	p.Session.SetToken(w, tok)
	// success page redirects to the listing after a short delay
	p.Render.Page(w, "login_success", nil)
}

func (p *Pages) logout(w http.ResponseWriter, r *http.Request) {
	p.Session.ClearToken(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// postReview runs the submission gate. Success redirects back to the detail
// page, which re-assembles the whole view (full re-fetch, no local patch of
// the review list). Any failure re-renders the page with the visitor's
// input preserved and the form usable again.
func (p *Pages) postReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	placeID := r.PostFormValue("place_id")
	rating, _ := strconv.Atoi(r.PostFormValue("rating"))
	in := app.ReviewInput{
		PlaceID: placeID,
		Comment: r.PostFormValue("review"),
		Rating:  rating,
	}

	res := p.Gate.Submit(r.Context(), p.Session.Token(r), in)
	if res.State == app.StateSucceeded {
		q := url.Values{"place_id": {placeID}, "flash": {res.Message}}
		http.Redirect(w, r, "/place?"+q.Encode(), http.StatusSeeOther)
		return
	}

	page := p.Assembler.Assemble(r.Context(), placeID, p.Session.Token(r))
	page.LoggedIn = p.Session.IsLoggedIn(r)
	page.FormErr = res.Message
	page.FormComment = in.Comment
	page.FormRating = in.Rating
	p.Render.Page(w, "place", page)
}
