package test

// Result 与ginx.Result同构, 测试里用泛型拿到强类型的Data
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
