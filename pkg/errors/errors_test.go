package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		code int32
		kind Kind
	}{
		{-2, KindStream},
		{-3, KindData},
		{-4, KindMemory},
		{-5, KindBuffer},
		{-6, KindVersion},
		{-9, KindUnknown},
		{7, KindUnknown},
	}

	for _, tc := range cases {
		err := Classify(tc.code, "boom")
		require.Equal(t, tc.kind, err.Kind, "code=%d", tc.code)
		require.Equal(t, tc.code, err.Code, "code=%d", tc.code)
		require.Equal(t, "boom", err.Message)
	}
}

func TestClassifyFallbackMessages(t *testing.T) {
	require.Equal(t, "data error", Classify(-3, "").Message)
	require.Equal(t, "stream error", Classify(-2, "").Message)
	require.Equal(t, "insufficient memory", Classify(-4, "").Message)
	require.Equal(t, "buffer error", Classify(-5, "").Message)
	require.Equal(t, "incompatible version", Classify(-6, "").Message)
	require.Equal(t, "unknown codec error", Classify(99, "").Message)
}

func TestCodecErrorFormatting(t *testing.T) {
	err := Classify(-3, "invalid checksum")
	require.Equal(t, "[data] invalid checksum (code -3)", err.Error())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "stream", KindStream.String())
	require.Equal(t, "data", KindData.String())
	require.Equal(t, "memory", KindMemory.String())
	require.Equal(t, "buffer", KindBuffer.String())
	require.Equal(t, "version", KindVersion.String())
	require.Equal(t, "unknown", KindUnknown.String())
	require.Equal(t, "unknown", Kind(0).String())
}

func TestCodecErrorHelpers(t *testing.T) {
	err := Classify(-5, "")
	wrapped := fmt.Errorf("decompress: %w", err)

	require.True(t, IsCodecError(wrapped))
	require.False(t, IsCodecError(fmt.Errorf("plain")))
	require.Nil(t, AsCodecError(fmt.Errorf("plain")))

	extracted := AsCodecError(wrapped)
	require.NotNil(t, extracted)
	require.Equal(t, KindBuffer, extracted.Kind)
}

func TestIsRecoverable(t *testing.T) {
	require.False(t, Classify(-2, "").IsRecoverable())
	require.True(t, Classify(-3, "").IsRecoverable())
	require.True(t, Classify(-4, "").IsRecoverable())
	require.False(t, Classify(-6, "").IsRecoverable())
	require.False(t, Classify(1234, "").IsRecoverable())
}

func TestValidationError(t *testing.T) {
	cause := fmt.Errorf("chunk size must be positive")
	err := NewValidationError("chunkSize", 0, cause)

	require.Equal(t, "chunkSize", err.Field)
	require.Equal(t, 0, err.Value)
	require.Equal(t, cause.Error(), err.Error())

	wrapped := fmt.Errorf("create service: %w", err)
	require.True(t, IsValidationError(wrapped))
	require.NotNil(t, AsValidationError(wrapped))
	require.False(t, IsValidationError(cause))

	require.Equal(t, "validation error", (&ValidationError{}).Error())
}
