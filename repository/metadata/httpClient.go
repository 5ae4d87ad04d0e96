package metadatarepo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/OlympusNSP/Library2/util/httpx"
)

const defaultBaseURL = "https://api.api-ninjas.com/v1/books"

type httpRepo struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewHTTP(apiKey string) Repo {
	return &httpRepo{apiKey: apiKey, baseURL: defaultBaseURL, client: httpx.Client()}
}

func (r *httpRepo) Lookup(title string) (*BookFacts, error) {
	req, err := http.NewRequest(http.MethodGet, r.baseURL+"?title="+url.QueryEscape(title), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("book lookup failed: %s", resp.Status)
	}

	var out []struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		Year   string `json:"year"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}

	f := &BookFacts{Title: out[0].Title, Author: out[0].Author}
	if y, err := strconv.Atoi(out[0].Year); err == nil {
		f.Year = int16(y)
	}
	return f, nil
}
