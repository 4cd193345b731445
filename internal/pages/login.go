package pages

import (
	"time"

	"github.com/instyleqa/storefront-e2e/internal/config"
)

// Login page locators.
var (
	loginEmailInput     = css("input[name='email'], input[type='email'], #email, #customer_email")
	loginPasswordInput  = css("input[name='password'], input[type='password'], #password, #customer_password")
	loginSubmitButton   = css("button[type='submit'], input[type='submit'], .btn--primary")
	loginForm           = css("form, .login-form, #customer_login")
	loginErrorBanner    = css(".error, .alert-error, .form__message--error, .errors")
	loginSuccessBanner  = css(".success, .alert-success, .form__message--success")
	loginForgotLink     = css("a[href*='forgot'], a[href*='recover']")
	loginRegisterLink   = css("a[href*='register'], a[href*='signup']")
	loginRememberMe     = css("input[type='checkbox'], #remember_me")
	loginPageHeading    = css("h1, .page-title, .login-title")
)

// messageWait bounds how long the suites wait for a banner that may simply
// not appear.
const messageWait = 3 * time.Second

// LoginPage drives the customer login form.
type LoginPage struct {
	page *Page
	urls config.URLs
}

func NewLoginPage(p *Page, cfg *config.Config) *LoginPage {
	return &LoginPage{page: p, urls: cfg.URLs}
}

// Open navigates to the login page.
func (l *LoginPage) Open() error {
	return l.page.Navigate(l.urls.Login)
}

// IsLoaded reports whether the login form is on screen.
func (l *LoginPage) IsLoaded() bool {
	return l.page.IsVisible(loginForm) &&
		(l.page.IsVisible(loginEmailInput, WithTimeout(messageWait)) ||
			l.page.WaitURLContains("login", WithTimeout(messageWait)))
}

// Login submits the form with the given credentials. It returns true when
// the browser leaves the login URL without an error banner appearing, which
// is how the storefront signals a successful sign-in.
func (l *LoginPage) Login(email, password string) (bool, error) {
	if err := l.page.TypeText(loginEmailInput, email); err != nil {
		return false, err
	}
	if err := l.page.TypeText(loginPasswordInput, password); err != nil {
		return false, err
	}
	if err := l.page.Click(loginSubmitButton); err != nil {
		return false, err
	}

	redirected := settleForm(l.page.clock, l.page.explicitWait, l.page.interval,
		func() bool { return l.page.IsVisible(loginErrorBanner, WithTimeout(0)) },
		func() bool { return !urlContains(l.page, "login") })
	return redirected, nil
}

// ErrorMessage returns the error banner text, or an empty string when no
// banner is shown.
func (l *LoginPage) ErrorMessage() string {
	if !l.page.IsVisible(loginErrorBanner, WithTimeout(messageWait)) {
		return ""
	}
	text, err := l.page.Text(loginErrorBanner, WithTimeout(messageWait))
	if err != nil {
		return ""
	}
	return text
}

// SuccessMessage returns the success banner text, if any.
func (l *LoginPage) SuccessMessage() string {
	if !l.page.IsVisible(loginSuccessBanner, WithTimeout(messageWait)) {
		return ""
	}
	text, err := l.page.Text(loginSuccessBanner, WithTimeout(messageWait))
	if err != nil {
		return ""
	}
	return text
}

// GoToForgotPassword follows the recovery link from the login form.
func (l *LoginPage) GoToForgotPassword() error {
	return l.page.Click(loginForgotLink)
}

// GoToRegister follows the create-account link.
func (l *LoginPage) GoToRegister() error {
	return l.page.Click(loginRegisterLink)
}

// FormComplete reports whether the form carries every required control.
func (l *LoginPage) FormComplete() bool {
	return l.page.IsPresent(loginEmailInput) &&
		l.page.IsPresent(loginPasswordInput) &&
		l.page.IsPresent(loginSubmitButton)
}

// Heading returns the page title heading text.
func (l *LoginPage) Heading() (string, error) {
	return l.page.Text(loginPageHeading)
}

// RememberMeAvailable reports whether a remember-me checkbox exists.
func (l *LoginPage) RememberMeAvailable() bool {
	return l.page.IsPresent(loginRememberMe)
}

func urlContains(p *Page, fragment string) bool {
	return containsFold(p.CurrentURL(), fragment)
}
