// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    responseMessage(resp.Body()),
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.Kind = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.Kind = ErrUnauthorized
	case http.StatusForbidden:
		respErr.Kind = ErrForbidden
	case http.StatusNotFound:
		respErr.Kind = ErrNotFound
	case http.StatusConflict:
		respErr.Kind = ErrConflict
	case http.StatusBadGateway:
		respErr.Kind = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.Kind = ErrInternalServerError
	default:
		respErr.Kind = ErrUnexpectedStatus
		if respErr.Message == "" {
			respErr.Message = http.StatusText(resp.StatusCode())
		}
	}

	return respErr
}

func responseMessage(body []byte) string {
	var envelope models.APIResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(body))
}
