package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/daygo-app/daygo/app/logic/v1"
	"github.com/daygo-app/daygo/app/response"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/utils"
)

// 25MB, matches the transcription provider's own cap
const maxAudioSize = 25 << 20

type TranscribeResponse struct {
	Text string `json:"text"`
}

func (s *HttpSrv) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.APIError(c, errors.New("handler.Transcribe.FormFile", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest))
		return
	}

	if fileHeader.Size > maxAudioSize {
		response.APIError(c, errors.New("handler.Transcribe.size", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.APIError(c, errors.New("handler.Transcribe.Open", i18n.ERROR_INTERNAL, err))
		return
	}
	defer file.Close()

	text, err := v1.NewMediaLogic(c, s.Core).Transcribe(fileHeader.Filename, file)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, TranscribeResponse{Text: text})
}

type ExtractImageTextRequest struct {
	ObjectKey string `json:"object_key" form:"object_key" binding:"required,max=300"`
}

type ExtractImageTextResponse struct {
	Text string `json:"text"`
}

func (s *HttpSrv) ExtractImageText(c *gin.Context) {
	var (
		err error
		req ExtractImageTextRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	text, err := v1.NewMediaLogic(c, s.Core).ExtractImageText(req.ObjectKey)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, ExtractImageTextResponse{Text: text})
}

type GenUploadKeyRequest struct {
	FileName      string `json:"file_name" form:"file_name" binding:"required,max=200"`
	ContentLength int64  `json:"content_length" form:"content_length" binding:"required,min=1"`
}

type GenUploadKeyResponse struct {
	ObjectKey string `json:"object_key"`
	UploadURL string `json:"upload_url"`
}

func (s *HttpSrv) GenUploadKey(c *gin.Context) {
	var (
		err error
		req GenUploadKeyRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	objectKey, uploadURL, err := v1.NewMediaLogic(c, s.Core).GenUploadKey(req.FileName, req.ContentLength)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, GenUploadKeyResponse{
		ObjectKey: objectKey,
		UploadURL: uploadURL,
	})
}
