package adapters

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"
	"github.com/ccmarin14/TTS-Service/config"
	"github.com/ccmarin14/TTS-Service/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePollyClient struct {
	pollyiface.PollyAPI
	input *polly.SynthesizeSpeechInput
	audio []byte
	err   error
}

func (f *fakePollyClient) SynthesizeSpeechWithContext(_ aws.Context, input *polly.SynthesizeSpeechInput, _ ...request.Option) (*polly.SynthesizeSpeechOutput, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return &polly.SynthesizeSpeechOutput{
		AudioStream: io.NopCloser(bytes.NewReader(f.audio)),
	}, nil
}

func TestPollySynthesis(t *testing.T) {
	client := &fakePollyClient{audio: []byte("polly-mp3-bytes")}
	provider := NewPollyProvider(client, &config.PollyConfig{Engine: "neural", OutputFormat: "mp3"}, 5*time.Second)

	voice := testVoiceProfile(PlatformPolly)
	voice.VoiceCode = "Lucia"

	req, err := provider.BuildRequest(context.Background(), "Hola mundo.", voice)
	require.NoError(t, err)

	audio, err := provider.ExecuteRequest(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []byte("polly-mp3-bytes"), audio)

	require.NotNil(t, client.input)
	assert.Equal(t, "Hola mundo.", aws.StringValue(client.input.Text))
	assert.Equal(t, "Lucia", aws.StringValue(client.input.VoiceId))
	assert.Equal(t, "mp3", aws.StringValue(client.input.OutputFormat))
	assert.Equal(t, "neural", aws.StringValue(client.input.Engine))
}

func TestPollySDKFailure(t *testing.T) {
	client := &fakePollyClient{err: awserr.New(polly.ErrCodeInvalidSampleRateException, "unsupported sample rate", nil)}
	provider := NewPollyProvider(client, &config.PollyConfig{Engine: "neural", OutputFormat: "mp3"}, 5*time.Second)

	req, err := provider.BuildRequest(context.Background(), "Hola mundo.", testVoiceProfile(PlatformPolly))
	require.NoError(t, err)

	_, err = provider.ExecuteRequest(context.Background(), req)
	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, PlatformPolly, providerErr.Platform)
	assert.Equal(t, "unsupported sample rate", providerErr.Message)
}

func TestPollyTimeout(t *testing.T) {
	client := &fakePollyClient{err: context.DeadlineExceeded}
	provider := NewPollyProvider(client, &config.PollyConfig{Engine: "neural", OutputFormat: "mp3"}, time.Millisecond)

	req, err := provider.BuildRequest(context.Background(), "Hola mundo.", testVoiceProfile(PlatformPolly))
	require.NoError(t, err)

	_, err = provider.ExecuteRequest(context.Background(), req)
	var timeoutErr *domain.ProviderTimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, PlatformPolly, timeoutErr.Platform)
}
