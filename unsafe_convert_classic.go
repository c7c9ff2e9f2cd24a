//go:build !go1.20

package codec

import (
	"reflect"
	"unsafe"
)

// Go 1.18-1.19版本的实现，使用reflect包构造slice header
func unsafeBytesToString_impl(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}

func unsafeStringToBytes_impl(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	sh := (*reflect.StringHeader)(unsafe.Pointer(&s))
	bh := reflect.SliceHeader{
		Data: sh.Data,
		Len:  sh.Len,
		Cap:  sh.Len,
	}
	return *(*[]byte)(unsafe.Pointer(&bh))
}
