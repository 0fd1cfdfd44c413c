package handlers

import (
	"errors"
	"net/http"

	"github.com/mdayat/daily-reflection-backend-service/configs"
	"github.com/mdayat/daily-reflection-backend-service/internal/dtos"
	"github.com/mdayat/daily-reflection-backend-service/internal/httputil"
	"github.com/mdayat/daily-reflection-backend-service/internal/services"
	"github.com/rs/zerolog/log"
)

const serverConfigurationError = "Server Configuration Error"

type ReflectionHandler interface {
	GenerateReflection(res http.ResponseWriter, req *http.Request)
}

type reflection struct {
	configs configs.Configs
	service services.ReflectionServicer
}

func NewReflectionHandler(configs configs.Configs, service services.ReflectionServicer) ReflectionHandler {
	return &reflection{
		configs: configs,
		service: service,
	}
}

func (r reflection) GenerateReflection(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	if !r.configs.Env.Credential.Configured() {
		logger.Error().
			Err(configs.ErrUnconfigured).
			Caller().
			Strs("checked_variables", configs.CredentialSources).
			Int("status_code", http.StatusInternalServerError).
			Msg("generation credential missing from environment")
		r.sendError(res, req, http.StatusInternalServerError, serverConfigurationError)
		return
	}

	var reqBody dtos.ReflectionRequest
	if err := httputil.DecodeJSON(req, &reqBody); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("invalid request body")
		r.sendError(res, req, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := r.service.GenerateReflection(ctx, reqBody.PromptDate())
	if err != nil {
		statusCode, message := reflectionErrorStatus(err)
		logger.Error().Err(err).Caller().Int("status_code", statusCode).Msg("failed to generate reflection")
		r.sendError(res, req, statusCode, message)
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    result,
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		r.sendError(res, req, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully generated reflection")
}

// reflectionErrorStatus maps a generation error to the status and message sent
// to the client.
func reflectionErrorStatus(err error) (int, string) {
	if errors.Is(err, configs.ErrUnconfigured) {
		return http.StatusInternalServerError, serverConfigurationError
	}

	var reflectionErr *services.ReflectionError
	if errors.As(err, &reflectionErr) {
		switch reflectionErr.Kind {
		case services.KindUpstream, services.KindExtraction, services.KindParse:
			return http.StatusInternalServerError, reflectionErr.Error()
		}
	}

	return http.StatusInternalServerError, err.Error()
}

func (r reflection) sendError(res http.ResponseWriter, req *http.Request, statusCode int, message string) {
	if err := httputil.SendErrorResponse(res, statusCode, message); err != nil {
		logger := log.Ctx(req.Context()).With().Logger()
		logger.Error().Err(err).Caller().Int("status_code", statusCode).Msg("failed to send error response")
		http.Error(res, http.StatusText(statusCode), statusCode)
	}
}
