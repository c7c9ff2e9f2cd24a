//go:build go1.20

package codec

import "unsafe"

// Go 1.20+版本的实现，使用官方unsafe函数
func unsafeBytesToString_impl(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func unsafeStringToBytes_impl(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
