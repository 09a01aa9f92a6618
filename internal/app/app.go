package app

import (
	"fmt"
	"net/http"
	"shopapi/internal/app/deps"
	"shopapi/internal/app/services"
	"shopapi/internal/http/handlers/auth"
	activateuser "shopapi/internal/http/handlers/auth/activate_user"
	loginwithemail "shopapi/internal/http/handlers/auth/log_in_with_email"
	logout "shopapi/internal/http/handlers/auth/log_out"
	resendverificationcode "shopapi/internal/http/handlers/auth/resend_verification_code"
	resetpassword "shopapi/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "shopapi/internal/http/handlers/auth/send_password_reset_token"
	signupwithemail "shopapi/internal/http/handlers/auth/sign_up_with_email"
	changepassword "shopapi/internal/http/handlers/profile/change_password"
	deleteuser "shopapi/internal/http/handlers/profile/delete_user"
	me "shopapi/internal/http/handlers/profile/me"
	updateuser "shopapi/internal/http/handlers/profile/update_user"
	getuser "shopapi/internal/http/handlers/users/get_user"
	listusers "shopapi/internal/http/handlers/users/list_users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signupwithemail.New(s.SignUpWithEmail, isTestMode))
	authRouter.Method(
		http.MethodPost,
		"/signup/resend",
		resendverificationcode.New(s.ResendVerificationCode, isTestMode),
	)
	authRouter.Method(http.MethodPost, "/activate", activateuser.New(s.ActivateUser))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetAuthTokenToContext)
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	profileRouter.Method(http.MethodPatch, "/me", updateuser.New(s.UpdateUser))
	profileRouter.Method(http.MethodDelete, "/me", deleteuser.New(s.DeleteUser))
	profileRouter.Method(http.MethodPut, "/password", changepassword.New(s.ChangePassword))

	usersRouter := chi.NewRouter()
	usersRouter.Use(auth.SetAuthTokenToContext)
	usersRouter.Method(http.MethodGet, "/", listusers.New(s.ListUsers))
	usersRouter.Method(http.MethodGet, "/{userID:[0-9]+}", getuser.New(s.GetUserByID))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)
	router.Mount("/users", usersRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
