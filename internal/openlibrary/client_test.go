package openlibrary

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchByTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "dune messiah", r.URL.Query().Get("title"))
		fmt.Fprint(w, `{"docs":[{"title":"Dune Messiah","author_name":["Frank Herbert"],"cover_i":123,"first_publish_year":1969}]}`)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	docs, err := client.SearchByTitle(context.Background(), "dune messiah")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Dune Messiah", docs[0].Title)
	assert.Equal(t, []string{"Frank Herbert"}, docs[0].AuthorName)
	assert.Equal(t, "https://covers.openlibrary.org/b/id/123-M.jpg", docs[0].CoverURL())
}

func TestSearchByTitleTruncatesToTen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"docs":[`)
		for i := 0; i < 25; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"title":"Book %d"}`, i)
		}
		fmt.Fprint(w, `]}`)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	docs, err := client.SearchByTitle(context.Background(), "book")
	require.NoError(t, err)
	assert.Len(t, docs, 10)
}

func TestSearchByTitleEmptyResultIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"docs":[]}`)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	docs, err := client.SearchByTitle(context.Background(), "no such book")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestSearchByTitleUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.SearchByTitle(context.Background(), "dune")
	assert.Error(t, err)
}

func TestSearchByTitleMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.SearchByTitle(context.Background(), "dune")
	assert.Error(t, err)
}

func TestCoverURLWithoutCover(t *testing.T) {
	assert.Empty(t, Doc{Title: "Uncovered"}.CoverURL())
}
