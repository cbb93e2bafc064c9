// Copyright 2025 UAForge Authors. All rights reserved.

package ua

// ServiceRequest is a request for a service.
type ServiceRequest interface {
	Header() *RequestHeader
}

// Header returns the request header.
func (h *RequestHeader) Header() *RequestHeader {
	return h
}

// ServiceResponse is a response from a service.
type ServiceResponse interface {
	Header() *ResponseHeader
}

// Header returns the response header.
func (h *ResponseHeader) Header() *ResponseHeader {
	return h
}
