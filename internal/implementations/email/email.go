package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"shopapi/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                   string
	verificationCodeTemplate string
	passwordResetTemplate    string
	passwordResetBaseUrl     url.URL
}

func NewEmailSender(
	awsConfig aws.Config,
	sender string,
	verificationCodeTemplate string,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *EmailSender {
	return &EmailSender{
		ses:                      ses.NewFromConfig(awsConfig),
		sender:                   sender,
		verificationCodeTemplate: verificationCodeTemplate,
		passwordResetTemplate:    passwordResetTemplate,
		passwordResetBaseUrl:     passwordResetBaseUrl,
	}
}

func (s *EmailSender) SendVerificationCode(ctx context.Context, u user.User, code string) error {
	if u.Email == "" {
		return errors.New("user email is not defined")
	}

	templateParamsBytes, err := json.Marshal(
		verificationCodeTemplateParams{
			Username:         string(u.Username),
			VerificationCode: code,
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	email := string(u.Email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Template:     &s.verificationCodeTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

func (s *EmailSender) SendPasswordResetToken(
	ctx context.Context,
	u user.User,
	uid user.EncodedUserID,
	token user.PasswordResetToken,
) error {
	if u.Email == "" {
		return errors.New("user email is not defined")
	}

	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{
			Username:         string(u.Username),
			PasswordResetUrl: s.passwordResetBaseUrl.JoinPath(string(uid), string(token)).String(),
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	email := string(u.Email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Template:     &s.passwordResetTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type verificationCodeTemplateParams struct {
	Username         string `json:"username"`
	VerificationCode string `json:"verificationCode"`
}

type passwordResetTemplateParams struct {
	Username         string `json:"username"`
	PasswordResetUrl string `json:"passwordResetUrl"`
}
