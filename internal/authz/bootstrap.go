package authz

import "github.com/pcshop-next/internal/logger"

// 内置角色的基线策略。
// 超级用户对目录维护接口全权限，普通用户只有互动与订单接口。
var defaultPolicies = []struct {
	Role   string
	Object string
	Action string
}{
	{RoleSuperuser, "/*", "*"},
	{RoleCustomer, "/auth/me", "GET"},
	{RoleCustomer, "/products", "GET"},
	{RoleCustomer, "/products/*", "GET"},
	{RoleCustomer, "/products/:id/rating", "POST"},
	{RoleCustomer, "/products/:id/rating", "DELETE"},
	{RoleCustomer, "/products/:id/favorite", "POST"},
	{RoleCustomer, "/products/:id/favorite", "DELETE"},
	{RoleCustomer, "/products/:id/shopping-cart", "POST"},
	{RoleCustomer, "/products/:id/shopping-cart", "DELETE"},
	{RoleCustomer, "/orders", "*"},
	{RoleCustomer, "/orders/*", "GET"},
	{RoleCustomer, "/pc-builds", "*"},
	{RoleCustomer, "/pc-builds/*", "GET"},
}

// Bootstrap 写入内置角色的基线策略（幂等）
func Bootstrap(s *Service) error {
	if s == nil {
		return nil
	}
	for _, p := range defaultPolicies {
		if err := s.GrantRolePolicy(p.Role, p.Object, p.Action); err != nil {
			logger.Errorw("authz_bootstrap_policy_failed",
				"role", p.Role,
				"object", p.Object,
				"action", p.Action,
				"error", err,
			)
			return err
		}
	}
	return nil
}
