package pages

import "github.com/instyleqa/storefront-e2e/internal/config"

// Registration page locators.
var (
	regFirstNameInput = css("input[name='first_name'], input[name='firstName'], #first_name, #customer_first_name")
	regLastNameInput  = css("input[name='last_name'], input[name='lastName'], #last_name, #customer_last_name")
	regEmailInput     = css("input[name='email'], input[type='email'], #email, #customer_email")
	regPasswordInput  = css("input[name='password'], input[type='password'], #password, #customer_password")
	regConfirmInput   = css("input[name='password_confirmation'], input[name='confirm_password'], #confirm_password")
	regPhoneInput     = css("input[name='phone'], input[type='tel'], #phone, #customer_phone")
	regTermsCheckbox  = css("input[name='terms'], input[name='agree_terms'], #agree_terms")
	regSubmitButton   = css("button[type='submit'], input[type='submit'], .btn--primary")
	regForm           = css("form, .register-form, #create_customer")
	regErrorBanner    = css(".error, .alert-error, .form__message--error, .errors")
	regFieldErrors    = css(".field-error, .input-error, .error-message")
)

// RegistrationPage drives the account creation form.
type RegistrationPage struct {
	page *Page
	urls config.URLs
}

func NewRegistrationPage(p *Page, cfg *config.Config) *RegistrationPage {
	return &RegistrationPage{page: p, urls: cfg.URLs}
}

// Open navigates to the registration page.
func (r *RegistrationPage) Open() error {
	return r.page.Navigate(r.urls.Register)
}

// IsLoaded reports whether the registration form is on screen.
func (r *RegistrationPage) IsLoaded() bool {
	return r.page.IsVisible(regForm) &&
		(r.page.IsVisible(regEmailInput, WithTimeout(messageWait)) ||
			r.page.WaitURLContains("register", WithTimeout(messageWait)))
}

// Register fills and submits the account form. Optional fields (confirm
// password, phone, terms) are filled only when the theme renders them.
// It returns true when the browser leaves the registration URL without an
// error banner appearing.
func (r *RegistrationPage) Register(user config.TestUser) (bool, error) {
	if r.page.IsPresent(regFirstNameInput) {
		if err := r.page.TypeText(regFirstNameInput, user.FirstName); err != nil {
			return false, err
		}
	}
	if r.page.IsPresent(regLastNameInput) {
		if err := r.page.TypeText(regLastNameInput, user.LastName); err != nil {
			return false, err
		}
	}
	if err := r.page.TypeText(regEmailInput, user.Email); err != nil {
		return false, err
	}
	if err := r.page.TypeText(regPasswordInput, user.Password); err != nil {
		return false, err
	}
	if r.page.IsPresent(regConfirmInput) {
		if err := r.page.TypeText(regConfirmInput, user.Password); err != nil {
			return false, err
		}
	}
	if r.page.IsPresent(regPhoneInput) && user.Phone != "" {
		if err := r.page.TypeText(regPhoneInput, user.Phone); err != nil {
			return false, err
		}
	}
	if r.page.IsPresent(regTermsCheckbox) {
		if err := r.page.Click(regTermsCheckbox); err != nil {
			return false, err
		}
	}
	if err := r.page.Click(regSubmitButton); err != nil {
		return false, err
	}

	left := settleForm(r.page.clock, r.page.explicitWait, r.page.interval,
		func() bool { return r.page.IsVisible(regErrorBanner, WithTimeout(0)) },
		func() bool { return !urlContains(r.page, "register") })
	return left, nil
}

// ErrorMessage returns the form-level error banner text, if any.
func (r *RegistrationPage) ErrorMessage() string {
	if !r.page.IsVisible(regErrorBanner, WithTimeout(messageWait)) {
		return ""
	}
	text, err := r.page.Text(regErrorBanner, WithTimeout(messageWait))
	if err != nil {
		return ""
	}
	return text
}

// HasFieldErrors reports whether any per-field validation message is shown.
func (r *RegistrationPage) HasFieldErrors() bool {
	return r.page.IsPresent(regFieldErrors)
}

// FormComplete reports whether the form carries every required control.
func (r *RegistrationPage) FormComplete() bool {
	return r.page.IsPresent(regEmailInput) &&
		r.page.IsPresent(regPasswordInput) &&
		r.page.IsPresent(regSubmitButton)
}
