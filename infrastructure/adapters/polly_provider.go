package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"
	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/config"
	"github.com/ccmarin14/TTS-Service/domain"
)

const PlatformPolly = "polly"

type pollyProvider struct {
	client  pollyiface.PollyAPI
	cfg     *config.PollyConfig
	timeout time.Duration
}

// NewPollyProvider wraps the Amazon Polly SDK. Unlike the HTTP providers
// there is no wire payload to assemble; the descriptor is the SDK input.
func NewPollyProvider(client pollyiface.PollyAPI, cfg *config.PollyConfig, timeout time.Duration) outbound.SynthesisProviderPort {
	return &pollyProvider{
		client:  client,
		cfg:     cfg,
		timeout: timeout,
	}
}

func (p *pollyProvider) Platform() string { return PlatformPolly }

func (p *pollyProvider) BuildRequest(_ context.Context, text string, voice domain.VoiceProfile) (outbound.ProviderRequest, error) {
	return &polly.SynthesizeSpeechInput{
		Text:         aws.String(text),
		OutputFormat: aws.String(p.cfg.OutputFormat),
		VoiceId:      aws.String(voice.VoiceCode),
		Engine:       aws.String(p.cfg.Engine),
	}, nil
}

func (p *pollyProvider) ExecuteRequest(ctx context.Context, req outbound.ProviderRequest) ([]byte, error) {
	input, ok := req.(*polly.SynthesizeSpeechInput)
	if !ok {
		return nil, fmt.Errorf("polly: unexpected request descriptor %T", req)
	}

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	output, err := p.client.SynthesizeSpeechWithContext(callCtx, input)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, &domain.ProviderTimeoutError{Platform: PlatformPolly, Timeout: p.timeout}
		}
		var aerr awserr.Error
		if errors.As(err, &aerr) {
			return nil, &domain.ProviderError{Platform: PlatformPolly, Message: aerr.Message()}
		}
		return nil, &domain.ProviderError{Platform: PlatformPolly, Message: err.Error()}
	}
	defer output.AudioStream.Close()

	audio, err := io.ReadAll(output.AudioStream)
	if err != nil {
		return nil, &domain.ProviderError{Platform: PlatformPolly, Message: err.Error()}
	}
	return audio, nil
}
