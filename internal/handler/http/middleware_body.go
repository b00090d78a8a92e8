// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package http

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// bodyStage reads JSON and URL-encoded bodies up front, bounded by the
// configured limit and decompressed according to Content-Encoding.
//
// JSON bodies must be an object or an array; the validated bytes are put
// back into r.Body. URL-encoded bodies are parsed into r.PostForm. Other
// content types pass through untouched.
func (h *Handler) bodyStage() Stage {
	return Stage{
		Name: "body",
		Run: func(w http.ResponseWriter, r *http.Request, next http.Handler) error {
			mediaType := bodyMediaType(r)
			if mediaType == "" || r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return nil
			}

			data, err := h.readBody(w, r)
			if err != nil {
				return err
			}

			switch mediaType {
			case contentTypeJSON:
				if err = validateJSON(data); err != nil {
					return err
				}
			case contentTypeForm:
				form, err := url.ParseQuery(string(data))
				if err != nil {
					return fmt.Errorf("%w: %v", ErrMalformedForm, err)
				}
				r.PostForm = form
			}

			r.Body = io.NopCloser(bytes.NewReader(data))
			r.ContentLength = int64(len(data))

			next.ServeHTTP(w, r)
			return nil
		},
	}
}

// bodyMediaType returns the media type of r when the body stage handles it
// and an empty string otherwise.
func bodyMediaType(r *http.Request) string {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}

	switch mediaType {
	case contentTypeJSON, contentTypeForm:
		return mediaType
	default:
		return ""
	}
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	encoding := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding")))

	body, err := decompressedBody(r.Body, encoding)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(http.MaxBytesReader(w, body, h.bodyLimit))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
		}
		if encoding != "" && encoding != "identity" {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContentEncoding, err)
		}
		return nil, NewHTTPError(http.StatusBadRequest, "error reading request body", err)
	}

	if encoding != "" && encoding != "identity" {
		r.Header.Del("Content-Encoding")
	}
	return data, nil
}

func decompressedBody(body io.ReadCloser, encoding string) (io.ReadCloser, error) {
	switch encoding {
	case "", "identity":
		return body, nil
	case "gzip", "x-gzip":
		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(body); err != nil {
			gzipReaderPool.Put(gzipReader)
			return nil, fmt.Errorf("%w: %v", ErrInvalidContentEncoding, err)
		}

		return &wrappedReadCloser{
			Reader: gzipReader,
			OnClose: func() {
				gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
			},
		}, nil
	case "deflate":
		zlibReader, err := zlib.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContentEncoding, err)
		}
		return zlibReader, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentEncoding, encoding)
	}
}

// validateJSON accepts an empty body or a JSON object or array.
func validateJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return fmt.Errorf("%w: top-level value must be an object or an array", ErrMalformedJSON)
	}
	if !json.Valid(trimmed) {
		return ErrMalformedJSON
	}
	return nil
}

// DecodeJSON decodes the request body into v. Unknown fields are rejected.
func DecodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return nil
}
