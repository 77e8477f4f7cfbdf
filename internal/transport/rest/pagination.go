package rest

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mfigueiredo/cursos-backend/internal/domain"
)

// parsePageRequest reads page, size and repeatable sort=prop,asc|desc query
// parameters. Out-of-range values are left to PageRequest.Normalize.
func parsePageRequest(r *http.Request) domain.PageRequest {
	q := r.URL.Query()

	var page domain.PageRequest
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		page.Page = v
	}
	if v, err := strconv.Atoi(q.Get("size")); err == nil {
		page.Size = v
	}
	for _, s := range q["sort"] {
		prop, dir, _ := strings.Cut(s, ",")
		if prop == "" {
			continue
		}
		page.Sort = append(page.Sort, domain.SortOrder{
			Property: prop,
			Desc:     strings.EqualFold(dir, "desc"),
		})
	}

	return page.Normalize()
}

// writePaginationHeaders sets X-Total-Count and an RFC 5988 Link header with
// first/prev/next/last relations pointing at the same path and sort order.
func writePaginationHeaders(w http.ResponseWriter, r *http.Request, page domain.PageRequest, total int64) {
	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))

	lastPage := 0
	if total > 0 {
		lastPage = int((total - 1) / int64(page.Size))
	}

	links := make([]string, 0, 4)
	link := func(rel string, p int) string {
		return fmt.Sprintf("<%s>; rel=%q", pageURL(r, p, page), rel)
	}

	if page.Page < lastPage {
		links = append(links, link("next", page.Page+1))
	}
	if page.Page > 0 {
		links = append(links, link("prev", page.Page-1))
	}
	links = append(links, link("last", lastPage), link("first", 0))

	w.Header().Set("Link", strings.Join(links, ","))
}

func pageURL(r *http.Request, page int, req domain.PageRequest) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(req.Size))
	for _, s := range req.Sort {
		dir := "asc"
		if s.Desc {
			dir = "desc"
		}
		q.Add("sort", s.Property+","+dir)
	}
	return r.URL.Path + "?" + q.Encode()
}
