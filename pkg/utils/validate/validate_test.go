package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestIsDomain(t *testing.T) {
	valid := []string{
		"example.com",
		"mail.example.co.uk",
		"EXAMPLE.IO",
		"a-b.example.org",
		"x1.io",
		strings.Repeat("a", 63) + ".com",
	}
	for _, d := range valid {
		require.Truef(t, IsDomain(d), "expected %q to be valid", d)
	}

	invalid := []string{
		"",
		"example",
		"example.",
		"example.c",
		"-example.com",
		"example-.com",
		"bad domain.com",
		strings.Repeat("a", 64) + ".com",
		"example.123",
		"https://example.com",
	}
	for _, d := range invalid {
		require.Falsef(t, IsDomain(d), "expected %q to be invalid", d)
	}
}

func TestIsHTTPSURL(t *testing.T) {
	require.True(t, IsHTTPSURL("https://example.com"))
	require.True(t, IsHTTPSURL("https://example.com/path?q=1"))
	require.True(t, IsHTTPSURL("HTTPS://example.com"))
	require.True(t, IsHTTPSURL("https:example.com"))
	require.True(t, IsHTTPSURL("https:/example.com/path"))
	require.True(t, IsHTTPSURL("https://example.com:8443"))

	for _, s := range []string{
		"",
		"http://x",
		"ftp://x",
		"//example.com",
		"example.com",
		"not-a-url",
		"https://",
		"https://exa mple.com",
		"https:",
		"https://example.com:99999",
		"https://:443",
	} {
		require.Falsef(t, IsHTTPSURL(s), "expected %q to be rejected", s)
	}
}

func TestDomainAndForwardingURLErrors(t *testing.T) {
	var vErr *ValidationError

	err := Domain("  ")
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, "domain is required", vErr.Reason)

	err = Domain("bad domain")
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, "invalid domain format", vErr.Reason)
	require.Contains(t, err.Error(), `"bad domain"`)

	require.NoError(t, Domain(" example.com "))

	err = ForwardingURL("http://example.com")
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, "forwarding_url", vErr.Field)

	require.NoError(t, ForwardingURL("https://example.com"))
}

func TestRegisterTags(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	type payload struct {
		Domain string `validate:"mailr_domain"`
		URL    string `validate:"https_url"`
	}
	require.NoError(t, v.Struct(payload{Domain: "example.com", URL: "https://example.com"}))
	require.Error(t, v.Struct(payload{Domain: "example", URL: "https://example.com"}))
	require.Error(t, v.Struct(payload{Domain: "example.com", URL: "http://example.com"}))
}
