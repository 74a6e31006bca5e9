package yagptclient

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
	"job-portal-backend/models"
)

type Provider interface {
	// GenerateByPromptAndText sends prompt as the system message and text as the user message.
	GenerateByPromptAndText(ctx context.Context, prompt, text string) (generatedText string, err error)
}

const (
	defaultTemperature = 0.7
	// generated job and candidate lists are long
	defaultMaxTokens = 8000
)

type impl struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

func NewClient(token, catalog string) Provider {
	i := impl{catalogID: catalog}
	if strings.TrimSpace(token) != "" {
		i.client = yandexgptclient.NewYandexGPTClientWithIAMToken(token)
	}
	return i
}

func (i impl) GenerateByPromptAndText(ctx context.Context, prompt, text string) (string, error) {
	if i.client == nil || i.catalogID == "" {
		return "", errors.Wrap(models.ErrUnavailable, "YandexGPT credentials are not configured")
	}
	response, err := i.client.CreateRequest(ctx, i.buildRequest(prompt, text))
	if err != nil {
		return "", errors.Wrap(err, "YandexGPT generation request failed")
	}
	if len(response.Result.Alternatives) == 0 {
		return "", errors.New("YandexGPT returned no alternatives")
	}
	return response.Result.Alternatives[0].Message.Text, nil
}

func (i impl) buildRequest(prompt, text string) yandexgptclient.YandexGPTRequest {
	return yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(i.catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: defaultTemperature,
			MaxTokens:   defaultMaxTokens,
		},
		Messages: []yandexgptclient.YandexGPTMessage{
			{Role: yandexgptclient.YandexGPTMessageRoleSystem, Text: prompt},
			{Role: yandexgptclient.YandexGPTMessageRoleUser, Text: text},
		},
	}
}
