package services

import (
	"shopapi/internal/app/deps"
	drl "shopapi/internal/core/domain/rate_limiter"
	"shopapi/internal/core/services"
	activateuser "shopapi/internal/core/services/activate_user"
	"shopapi/internal/core/services/auth"
	changepassword "shopapi/internal/core/services/change_password"
	deleteuser "shopapi/internal/core/services/delete_user"
	getuserbyid "shopapi/internal/core/services/get_user_by_id"
	getuserbysessiontoken "shopapi/internal/core/services/get_user_by_session_token"
	listusers "shopapi/internal/core/services/list_users"
	loginwithemail "shopapi/internal/core/services/log_in_with_email"
	logout "shopapi/internal/core/services/log_out"
	ratelimiting "shopapi/internal/core/services/rate_limiting"
	resendverificationcode "shopapi/internal/core/services/resend_verification_code"
	resetpassword "shopapi/internal/core/services/reset_password"
	sendpasswordresettoken "shopapi/internal/core/services/send_password_reset_token"
	signupwithemail "shopapi/internal/core/services/sign_up_with_email"
	updateuser "shopapi/internal/core/services/update_user"
)

type Services struct {
	SignUpWithEmail        services.Service[signupwithemail.Input, signupwithemail.Result]
	ResendVerificationCode services.Service[resendverificationcode.Input, resendverificationcode.Result]
	ActivateUser           services.Service[activateuser.Input, activateuser.Result]
	LogInWithEmail         services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                 services.Service[logout.Input, logout.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
	ChangePassword         services.Service[changepassword.Input, changepassword.Result]
	GetUserBySessionToken  services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	UpdateUser             services.Service[updateuser.Input, updateuser.Result]
	DeleteUser             services.Service[deleteuser.Input, deleteuser.Result]
	ListUsers              services.Service[listusers.Input, listusers.Result]
	GetUserByID            services.Service[getuserbyid.Input, getuserbyid.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.NewWithVerificationCodeSending(
		deps.Logger,
		deps.VerificationCodeSender,
		signupwithemail.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.VerificationCodeGenerator,
			deps.Now,
		),
	)
	s.ResendVerificationCode = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		resendverificationcode.NewWithVerificationCodeSending(
			deps.Logger,
			deps.VerificationCodeSender,
			resendverificationcode.New(
				deps.Logger,
				deps.UserRepository,
				deps.VerificationCodeRepository,
				deps.VerificationCodeGenerator,
				deps.Now,
			),
		),
	)
	s.ActivateUser = activateuser.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.NewWithTokenSending(
			deps.Logger,
			deps.PasswordResetTokenSender,
			sendpasswordresettoken.New(
				deps.Logger,
				deps.UserRepository,
				deps.PasswordResetter,
				deps.UserIDCodec,
			),
		),
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordResetter,
		deps.UserIDCodec,
		deps.PasswordHasher,
	)
	s.ChangePassword = auth.WithAuthentication(
		deps.SessionRepository,
		changepassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
		),
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.UpdateUser = auth.WithAuthentication(
		deps.SessionRepository,
		updateuser.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.DeleteUser = auth.WithAuthentication(
		deps.SessionRepository,
		deleteuser.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.ListUsers = auth.WithAuthentication(
		deps.SessionRepository,
		listusers.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.GetUserByID = auth.WithAuthentication(
		deps.SessionRepository,
		getuserbyid.New(
			deps.Logger,
			deps.UserRepository,
		),
	)

	return s
}
