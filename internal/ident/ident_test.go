package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"AeEnable", "ae_enable"},
		{"AwbMode", "awb_mode"},
		{"ColourCorrectionMatrix", "colour_correction_matrix"},
		{"AfWindows", "af_windows"},
		{"ScalerCrop", "scaler_crop"},

		// acronym followed by a word
		{"AWBMode", "awb_mode"},
		{"HDRMode", "hdr_mode"},
		{"SensorSensitivityISO", "sensor_sensitivity_iso"},

		// digit boundaries
		{"Gain2x", "gain2_x"},
		{"PispStatsBin32Output", "pisp_stats_bin32_output"},
		{"Sensor12Bit", "sensor12_bit"},
		{"Mode3", "mode3"},

		// edge cases
		{"", ""},
		{"A", "a"},
		{"ae", "ae"},
		{"AE", "ae"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Transform(tt.input))
		})
	}
}

func TestTransformDeterministic(t *testing.T) {
	t.Parallel()

	for range 3 {
		assert.Equal(t, "frame_duration_limits", Transform("FrameDurationLimits"))
	}
}

func TestLinkageName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AE_ENABLE", LinkageName("AeEnable"))
	assert.Equal(t, "LENS_SHADING_MAP_MODE", LinkageName("LensShadingMapMode"))
	assert.Equal(t, "PIXEL_ARRAY_SIZE", LinkageName("PixelArraySize"))
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Colour", "Gains"}, Tokenize("ColourGains"))
	assert.Equal(t, []string{"XML", "Parser"}, Tokenize("XMLParser"))
	assert.Nil(t, Tokenize(""))
}

func TestVariantName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Auto", VariantName("AfMode", "AfModeAuto"))
	assert.Equal(t, "Continuous", VariantName("AfMode", "AfModeContinuous"))
	assert.Equal(t, "MeteringCentreWeighted", VariantName("AeMeteringMode", "MeteringCentreWeighted"))
	assert.Empty(t, VariantName("AfMode", "AfMode"))
}

func TestIsExported(t *testing.T) {
	t.Parallel()

	assert.True(t, IsExported("AeEnable"))
	assert.True(t, IsExported("Mode_2"))
	assert.False(t, IsExported("aeEnable"))
	assert.False(t, IsExported("Ae-Enable"))
	assert.False(t, IsExported("2Ae"))
	assert.False(t, IsExported(""))
	assert.Equal(t, "Manual", Upper("manual"))
}
