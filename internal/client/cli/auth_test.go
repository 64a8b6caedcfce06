package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func stubInputs(t *testing.T, username string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func TestLogin_Success(t *testing.T) {
	var gotEmail, gotPassword string
	client := &fakeClient{
		loginFn: func(email, password string) (string, error) {
			gotEmail, gotPassword = email, password
			return "t1", nil
		},
	}
	a, out := newTestApp(client, "")

	restore := stubInputs(t, "grace@example.org", []byte("secret"))
	defer restore()

	a.login(context.Background())

	if gotEmail != "grace@example.org" || gotPassword != "secret" {
		t.Fatalf("credentials mismatch: %q %q", gotEmail, gotPassword)
	}
	if !a.isLoggedIn() {
		t.Fatal("not logged in after successful login")
	}
	if a.Screen() != ScreenHome {
		t.Fatalf("screen = %s, want home", a.Screen())
	}
	if !strings.Contains(out.String(), "Welcome, Grace.") {
		t.Fatalf("missing greeting in output: %q", out.String())
	}
}

func TestLogin_RejectedShowsServerMessage(t *testing.T) {
	client := &fakeClient{
		loginFn: func(string, string) (string, error) {
			return "", errors.New("boom")
		},
	}
	a, out := newTestApp(client, "")

	restore := stubInputs(t, "grace@example.org", []byte("wrong"))
	defer restore()

	a.login(context.Background())

	if a.isLoggedIn() {
		t.Fatal("logged in after rejected login")
	}
	if !strings.Contains(out.String(), "Login failed") {
		t.Fatalf("missing failure message in output: %q", out.String())
	}
}

func TestSignup_Success(t *testing.T) {
	a, _ := newTestApp(&fakeClient{}, "")

	restore := stubInputs(t, "grace@example.org", []byte("secret"))
	defer restore()

	a.signup(context.Background())

	if !a.isLoggedIn() {
		t.Fatal("not logged in after signup")
	}
}

func TestLogout(t *testing.T) {
	a, _ := loggedInApp(&fakeClient{}, "")
	a.screen = ScreenChat

	a.logout(context.Background())

	if a.isLoggedIn() {
		t.Fatal("still logged in")
	}
	if a.Screen() != ScreenHome {
		t.Fatalf("screen = %s, want home", a.Screen())
	}
}
