package adaptor

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/xh-polaris/sahayak-core-api/biz/infra/config"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// 身份解析结果是三态和类型, 调用方显式分支:
// Resolved携带用户id; Anonymous表示无凭证; Invalid携带失效原因(expired/invalid)
type IdentityKind int

const (
	IdentityAnonymous IdentityKind = iota
	IdentityResolved
	IdentityInvalid
)

const (
	ReasonExpired = "expired"
	ReasonInvalid = "invalid"
)

type Identity struct {
	Kind   IdentityKind
	UID    string
	Reason string
}

func Anonymous() Identity {
	return Identity{Kind: IdentityAnonymous}
}

// ResolveIdentity 从请求头解析可选的调用方身份
// 凭证缺失/过期/非法都不报错, 管线里统一按匿名兜底, 需要强认证的入口自行分支Invalid
func ResolveIdentity(ctx context.Context) Identity {
	c, err := ExtractContext(ctx)
	if err != nil {
		return Anonymous()
	}
	raw := strings.TrimSpace(string(c.GetHeader("Authorization")))
	if raw == "" {
		return Anonymous()
	}
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	return ResolveIdentityFromJWT(raw, secretKey())
}

// ResolveIdentityFromJWT 解析HS256签发的访问令牌, subject在user_id声明里
func ResolveIdentityFromJWT(tokenString, secret string) Identity {
	token, err := jwt.Parse(tokenString, func(_ *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{Kind: IdentityInvalid, Reason: ReasonExpired}
		}
		return Identity{Kind: IdentityInvalid, Reason: ReasonInvalid}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{Kind: IdentityInvalid, Reason: ReasonInvalid}
	}
	uid, ok := claims["user_id"].(string)
	if !ok || uid == "" {
		return Identity{Kind: IdentityInvalid, Reason: ReasonInvalid}
	}
	return Identity{Kind: IdentityResolved, UID: uid}
}

func secretKey() string {
	if cfg := config.GetConfig(); cfg != nil {
		return cfg.Auth.SecretKey
	}
	return ""
}
