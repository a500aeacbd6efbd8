package filter_api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/filtergraph/cmd/web/handlers/common"
	"thirdcoast.systems/filtergraph/pkg/ffmpeg"
	"thirdcoast.systems/filtergraph/pkg/filters"
	"thirdcoast.systems/filtergraph/pkg/utils/crops"
)

// CompileRequest is the body of POST /api/compile.
type CompileRequest struct {
	Input  string            `json:"input"`
	Output string            `json:"output"`
	Export ffmpeg.ExportSpec `json:"export"`
	Crops  crops.CropArray   `json:"crops,omitempty"`
}

// CompileResponse is the compiled command.
type CompileResponse struct {
	Command      string               `json:"command"`
	Args         []string             `json:"args"`
	VideoFilters []filters.Descriptor `json:"video_filters"`
	AudioFilters []filters.Descriptor `json:"audio_filters"`
	VideoChain   string               `json:"video_chain,omitempty"`
	AudioChain   string               `json:"audio_chain,omitempty"`
}

// Compile turns spec into a CompileResponse.
func Compile(reg *filters.Registry, binary, input, output string, spec ffmpeg.ExportSpec, clipCrops crops.CropArray) (*CompileResponse, error) {
	if input == "" {
		input = "input"
	}
	cmd, err := spec.Compile(reg, input, output, clipCrops, ffmpeg.WithBinary(binary))
	if err != nil {
		return nil, err
	}
	video, audio := cmd.VideoChain(), cmd.AudioChain()
	return &CompileResponse{
		Command:      cmd.String(),
		Args:         cmd.Build(),
		VideoFilters: video,
		AudioFilters: audio,
		VideoChain:   filters.Join(video),
		AudioChain:   filters.Join(audio),
	}, nil
}

// HandleCompile compiles an export recipe into an ffmpeg invocation without running it.
func HandleCompile(reg *filters.Registry, binary string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CompileRequest
		if err := common.BindAndValidate(c, &req); err != nil {
			return err
		}

		resp, err := Compile(reg, binary, req.Input, req.Output, req.Export, req.Crops)
		if err != nil {
			return common.CompileError(err)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
