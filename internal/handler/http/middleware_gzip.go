package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// gzipLevel is the compression level of gzip responses.
const gzipLevel = gzip.BestSpeed

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGunzip transparently decompresses request bodies sent with
// "Content-Encoding: gzip". Response compression is done by chi's Compress
// middleware.
func withGunzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Content-Encoding"), "gzip") || req.Body == nil {
			next.ServeHTTP(w, req)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(req.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			writeError(w, req, ErrInvalidGzipBody)
			return
		}

		req.Body = &pooledReadCloser{
			Reader: gzipReader,
			onClose: func() {
				gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
			},
		}
		req.Header.Del("Content-Encoding")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}

type pooledReadCloser struct {
	io.Reader
	onClose func()
	closed  bool
}

func (p *pooledReadCloser) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.onClose != nil {
		p.onClose()
	}
	return nil
}
