package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

// 测试进程里session直接从gin上下文取, 由测试中间件预先写入
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

type SessionProvider struct{}

func (s *SessionProvider) NewSession(_ *gctx.Context, _ int64, _ map[string]string, _ map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get("_session")
	if !ok {
		return nil, errors.New("测试会话未设置")
	}
	return val.(session.Session), nil
}

func (s *SessionProvider) Destroy(_ *gctx.Context) error {
	return nil
}

func (s *SessionProvider) UpdateClaims(_ *gctx.Context, _ session.Claims) error {
	return nil
}

func (s *SessionProvider) RenewAccessToken(_ *gctx.Context) error {
	return nil
}
