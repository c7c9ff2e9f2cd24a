package codec

// UnsafeBytesToString 零拷贝转换[]byte到string
// 使用构建标签自动选择最优实现
//
// WARNING: 返回的字符串与底层[]byte共享内存
// 在使用字符串期间不要修改原始数据
func UnsafeBytesToString(b []byte) string {
	return unsafeBytesToString_impl(b)
}

// UnsafeStringToBytes 零拷贝转换string到[]byte
// 使用构建标签自动选择最优实现
//
// WARNING: 返回的[]byte与底层字符串共享内存
// 不要修改返回的[]byte
func UnsafeStringToBytes(s string) []byte {
	return unsafeStringToBytes_impl(s)
}
