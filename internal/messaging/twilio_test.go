package messaging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwilioSender_Send(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewTwilioSender("AC123", "secret", "whatsapp:+14155238886", zerolog.Nop())
	s.baseURL = srv.URL

	err := s.Send(context.Background(), "whatsapp:+27821234567", "Service logged: CW001")
	require.NoError(t, err)

	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "AC123", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "whatsapp:+27821234567", gotTo)
	assert.Equal(t, "whatsapp:+14155238886", gotFrom)
	assert.Equal(t, "Service logged: CW001", gotBody)
}

func TestTwilioSender_Send_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code": 20003, "message": "Authentication Error"}`))
	}))
	defer srv.Close()

	s := NewTwilioSender("AC123", "wrong", "whatsapp:+14155238886", zerolog.Nop())
	s.baseURL = srv.URL

	err := s.Send(context.Background(), "whatsapp:+27821234567", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Authentication Error")
}
