package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/prajwalb/sameeksha/config"
	"github.com/stretchr/testify/assert"
)

type fakeHTTPClient struct {
	response *http.Response
	err      error
	calls    int
}

func (c *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.calls++
	return c.response, c.err
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func translateConfig() *config.Config {
	return &config.Config{Translate: config.Translate{APIURL: "http://translate.local/translate"}}
}

func TestTranslateSuccess(t *testing.T) {
	client := &fakeHTTPClient{response: jsonResponse(200, `{"translatedText":"ನಮಸ್ಕಾರ"}`)}
	svc := NewTranslationService(translateConfig(), client)

	got := svc.Translate(context.Background(), "Hello", "kn")
	assert.Equal(t, "ನಮಸ್ಕಾರ", got)
	assert.Equal(t, 1, client.calls)
}

func TestTranslateFallsBackOnError(t *testing.T) {
	client := &fakeHTTPClient{err: errors.New("connection refused")}
	svc := NewTranslationService(translateConfig(), client)

	got := svc.Translate(context.Background(), "Hello", "kn")
	assert.Equal(t, "Hello", got, "failures return the original text")
}

func TestTranslateFallsBackOnNon2xx(t *testing.T) {
	client := &fakeHTTPClient{response: jsonResponse(500, `{"error":"boom"}`)}
	svc := NewTranslationService(translateConfig(), client)

	got := svc.Translate(context.Background(), "Hello", "kn")
	assert.Equal(t, "Hello", got)
}

func TestTranslateFallsBackOnBadBody(t *testing.T) {
	client := &fakeHTTPClient{response: jsonResponse(200, `not json`)}
	svc := NewTranslationService(translateConfig(), client)

	got := svc.Translate(context.Background(), "Hello", "kn")
	assert.Equal(t, "Hello", got)
}

func TestTranslateSkipsWithoutAPIURL(t *testing.T) {
	client := &fakeHTTPClient{}
	svc := NewTranslationService(&config.Config{}, client)

	got := svc.Translate(context.Background(), "Hello", "kn")
	assert.Equal(t, "Hello", got)
	assert.Zero(t, client.calls, "no API configured means no outbound call")
}

func TestTranslateBatch(t *testing.T) {
	client := &fakeHTTPClient{err: errors.New("down")}
	svc := NewTranslationService(translateConfig(), client)

	got := svc.TranslateBatch(context.Background(), []string{"one", "two"}, "kn")
	assert.Equal(t, []string{"one", "two"}, got)
}
