package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers http.Header
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest прогоняет запрос через args.Router и возвращает записанный ответ.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{headers: make(http.Header)}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, args.Body)
	for k, values := range options.headers {
		for _, v := range values {
			request.Header.Add(k, v)
		}
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers.Set(name, value)
	}
}

// WithHeaders копирует все заголовки из h, например подпись Wechatpay-* колбэка.
func WithHeaders(h http.Header) func(*RequestOptions) {
	return func(o *RequestOptions) {
		for k, values := range h {
			for _, v := range values {
				o.headers.Add(k, v)
			}
		}
	}
}
