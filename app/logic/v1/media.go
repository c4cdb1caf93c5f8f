package v1

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/daygo-app/daygo/app/core"
	"github.com/daygo-app/daygo/pkg/errors"
	"github.com/daygo-app/daygo/pkg/i18n"
	"github.com/daygo-app/daygo/pkg/utils"
)

var supportedAudioExt = map[string]bool{
	".mp3":  true,
	".mp4":  true,
	".mpeg": true,
	".mpga": true,
	".m4a":  true,
	".wav":  true,
	".webm": true,
	".ogg":  true,
}

var supportedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// MediaLogic covers speech-to-text and image text extraction for entry
// drafting.
type MediaLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewMediaLogic(ctx context.Context, core *core.Core) *MediaLogic {
	return &MediaLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}
}

// Transcribe converts an uploaded audio file into draft text.
func (l *MediaLogic) Transcribe(fileName string, reader io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !supportedAudioExt[ext] {
		return "", errors.New("MediaLogic.Transcribe.ext", i18n.ERROR_AUDIO_TYPE_UNSUPPORT, nil).Code(http.StatusBadRequest)
	}

	timer := l.core.Metrics().AIRequestTimer("transcribe")
	defer timer.ObserveDuration()

	text, err := l.core.AI().Transcribe(l.ctx, fileName, reader)
	if err != nil {
		l.core.Metrics().AIErrorInc("transcribe")
		return "", errors.New("MediaLogic.Transcribe.AI.Transcribe", i18n.ERROR_INTERNAL, err)
	}
	return text, nil
}

// ExtractImageText pulls text from a stored image. objectKey refers to a
// file previously uploaded through GenUploadKey.
func (l *MediaLogic) ExtractImageText(objectKey string) (string, error) {
	ext := strings.ToLower(filepath.Ext(objectKey))
	if !supportedImageExt[ext] {
		return "", errors.New("MediaLogic.ExtractImageText.ext", i18n.ERROR_IMAGE_TYPE_UNSUPPORT, nil).Code(http.StatusBadRequest)
	}

	if l.core.FileStorage() == nil {
		return "", errors.New("MediaLogic.ExtractImageText.storage", i18n.ERROR_INTERNAL, nil)
	}

	imageURL, err := l.core.FileStorage().GenGetObjectPreSignURL(objectKey)
	if err != nil {
		return "", errors.New("MediaLogic.ExtractImageText.GenGetObjectPreSignURL", i18n.ERROR_INTERNAL, err)
	}

	timer := l.core.Metrics().AIRequestTimer("ocr")
	defer timer.ObserveDuration()

	text, err := l.core.AI().ExtractTextFromImage(l.ctx, imageURL)
	if err != nil {
		l.core.Metrics().AIErrorInc("ocr")
		return "", errors.New("MediaLogic.ExtractImageText.AI.ExtractTextFromImage", i18n.ERROR_INTERNAL, err)
	}
	return text, nil
}

// GenUploadKey returns a presigned PUT URL the client uploads media to.
func (l *MediaLogic) GenUploadKey(fileName string, contentLength int64) (string, string, error) {
	claims := l.GetUserInfo()

	ext := strings.ToLower(filepath.Ext(fileName))
	if !supportedAudioExt[ext] && !supportedImageExt[ext] {
		return "", "", errors.New("MediaLogic.GenUploadKey.ext", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	if l.core.FileStorage() == nil {
		return "", "", errors.New("MediaLogic.GenUploadKey.storage", i18n.ERROR_INTERNAL, nil)
	}

	objectKey := fmt.Sprintf("media/%s/%d-%s%s", claims.User, time.Now().Unix(), utils.RandomStr(8), ext)
	uploadURL, err := l.core.FileStorage().GenClientUploadKey(objectKey, contentLength)
	if err != nil {
		return "", "", errors.New("MediaLogic.GenUploadKey.GenClientUploadKey", i18n.ERROR_INTERNAL, err)
	}
	return objectKey, uploadURL, nil
}
