package handler_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frisbeeJoke = "I was wondering why the frisbee was getting bigger, then it hit me."

func TestCreateJokeRejectsInvalidFields(t *testing.T) {
	repo := newStubRepo()
	router := newTestRouter(repo)

	w := postForm(router, "/jokes/new", url.Values{
		"name":    {"a"},
		"content": {"too short"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	fieldErrors := body["fieldErrors"].(map[string]any)
	assert.Equal(t, "That joke's name is too short", fieldErrors["name"])
	assert.Equal(t, "That joke is too short", fieldErrors["content"])
	fields := body["fields"].(map[string]any)
	assert.Equal(t, "a", fields["name"])
	assert.Empty(t, repo.jokes)
}

func TestCreateJokeRejectsAbsentFields(t *testing.T) {
	router := newTestRouter(newStubRepo())

	w := postForm(router, "/jokes/new", url.Values{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fieldErrors := decodeBody(t, w)["fieldErrors"].(map[string]any)
	assert.Equal(t, "That joke's name is required", fieldErrors["name"])
	assert.Equal(t, "That joke is required", fieldErrors["content"])
}

func TestCreateJokeRedirectsToDetail(t *testing.T) {
	repo := newStubRepo()
	router := newTestRouter(repo)

	w := postForm(router, "/jokes/new", url.Values{
		"name":    {"Frisbee"},
		"content": {frisbeeJoke},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/jokes/"), "redirect should point at the created joke, got %q", location)

	detail := get(router, location)
	require.Equal(t, http.StatusOK, detail.Code)
	data := decodeBody(t, detail)["data"].(map[string]any)
	assert.Equal(t, "Frisbee", data["name"])
	assert.Equal(t, frisbeeJoke, data["content"])
	assert.Nil(t, data["jokester_id"], "anonymous submissions carry no owner")
}

func TestCreateJokeAttachesSessionUser(t *testing.T) {
	repo := newStubRepo()
	router := newTestRouter(repo)

	reg := postForm(router, "/login", url.Values{
		"loginType": {"register"},
		"username":  {"kody"},
		"password":  {"twixrox"},
	})
	require.Equal(t, http.StatusSeeOther, reg.Code)
	cookie := sessionCookie(t, reg)

	w := postForm(router, "/jokes/new", url.Values{
		"name":    {"Frisbee"},
		"content": {frisbeeJoke},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	require.Len(t, repo.jokes, 1)
	require.NotNil(t, repo.jokes[0].JokesterID)
	assert.Equal(t, repo.users[0].ID, *repo.jokes[0].JokesterID)
}

func TestListReturnsTopFiveNewestFirst(t *testing.T) {
	repo := newStubRepo()
	router := newTestRouter(repo)

	for i := 1; i <= 6; i++ {
		w := postForm(router, "/jokes/new", url.Values{
			"name":    {fmt.Sprintf("joke %d", i)},
			"content": {fmt.Sprintf("the body of joke number %d", i)},
		})
		require.Equal(t, http.StatusSeeOther, w.Code)
	}

	list := get(router, "/jokes")
	require.Equal(t, http.StatusOK, list.Code)
	data := decodeBody(t, list)["data"].(map[string]any)
	jokes := data["jokes"].([]any)
	require.Len(t, jokes, 5)
	for i, raw := range jokes {
		item := raw.(map[string]any)
		assert.Equal(t, fmt.Sprintf("joke %d", 6-i), item["name"])
	}
	assert.Nil(t, data["user"])
}

func TestGetJokeInvalidID(t *testing.T) {
	router := newTestRouter(newStubRepo())

	w := get(router, "/jokes/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetJokeUnknownID(t *testing.T) {
	router := newTestRouter(newStubRepo())

	w := get(router, "/jokes/6f1c3a52-8f44-4f65-9a6e-57e9c1f0a111")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRandomJoke(t *testing.T) {
	repo := newStubRepo()
	router := newTestRouter(repo)

	empty := get(router, "/jokes/random")
	assert.Equal(t, http.StatusNotFound, empty.Code)

	w := postForm(router, "/jokes/new", url.Values{
		"name":    {"Frisbee"},
		"content": {frisbeeJoke},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	random := get(router, "/jokes/random")
	require.Equal(t, http.StatusOK, random.Code)
	data := decodeBody(t, random)["data"].(map[string]any)
	assert.Equal(t, "Frisbee", data["name"])
}
