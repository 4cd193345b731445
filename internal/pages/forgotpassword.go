package pages

import "github.com/instyleqa/storefront-e2e/internal/config"

// Forgot-password page locators.
var (
	forgotEmailInput    = css("input[name='email'], input[type='email'], #email, #customer_email")
	forgotSubmitButton  = css("button[type='submit'], input[type='submit'], .btn--primary")
	forgotForm          = css("form, .forgot-password-form")
	forgotSuccessBanner = css(".success, .alert-success, .form__message--success")
	forgotErrorBanner   = css(".error, .alert-error, .form__message--error")
	forgotLoginLink     = css("a[href*='login']")
)

// ForgotPasswordPage drives the password recovery form.
type ForgotPasswordPage struct {
	page *Page
	urls config.URLs
}

func NewForgotPasswordPage(p *Page, cfg *config.Config) *ForgotPasswordPage {
	return &ForgotPasswordPage{page: p, urls: cfg.URLs}
}

// Open navigates to the recovery page.
func (f *ForgotPasswordPage) Open() error {
	return f.page.Navigate(f.urls.ForgotPassword)
}

// IsLoaded reports whether the recovery form is on screen.
func (f *ForgotPasswordPage) IsLoaded() bool {
	return f.page.IsVisible(forgotEmailInput, WithTimeout(messageWait)) ||
		f.page.WaitURLContains("recover", WithTimeout(messageWait)) ||
		f.page.WaitURLContains("forgot", WithTimeout(messageWait))
}

// SubmitEmail fills in the address and submits the recovery request.
func (f *ForgotPasswordPage) SubmitEmail(email string) error {
	if err := f.page.TypeText(forgotEmailInput, email); err != nil {
		return err
	}
	return f.page.Click(forgotSubmitButton)
}

// ConfirmationShown reports whether the storefront acknowledged the request.
// Registered addresses get a confirmation banner.
func (f *ForgotPasswordPage) ConfirmationShown() bool {
	return f.page.IsVisible(forgotSuccessBanner)
}

// NotFoundShown reports whether the storefront answered with its handled
// unknown-address message rather than a raw error page.
func (f *ForgotPasswordPage) NotFoundShown() bool {
	return f.page.IsVisible(forgotErrorBanner)
}

// Message returns whichever banner text is shown, confirmation first.
func (f *ForgotPasswordPage) Message() string {
	for _, banner := range []Locator{forgotSuccessBanner, forgotErrorBanner} {
		if f.page.IsVisible(banner, WithTimeout(messageWait)) {
			if text, err := f.page.Text(banner, WithTimeout(messageWait)); err == nil {
				return text
			}
		}
	}
	return ""
}

// BackToLogin follows the link back to the login form.
func (f *ForgotPasswordPage) BackToLogin() error {
	return f.page.Click(forgotLoginLink)
}

// FormComplete reports whether the form carries every required control.
func (f *ForgotPasswordPage) FormComplete() bool {
	return f.page.IsPresent(forgotForm) &&
		f.page.IsPresent(forgotEmailInput) &&
		f.page.IsPresent(forgotSubmitButton)
}
