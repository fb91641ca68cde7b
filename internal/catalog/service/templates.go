package service

import "bulwark/internal/catalog/models"

// Template describes a rule atom family for the configuration UI.
type Template struct {
	Type         models.RuleType `json:"rule_type"`
	Name         string          `json:"name"`
	Description  string          `json:"desc"`
	Configurable bool            `json:"configurable"`
}

var templates = map[models.RuleType]Template{
	models.RulePerm:     {Name: "PermissionMatrixHandler", Description: "权限矩阵"},
	models.RuleRegex:    {Name: "RegexMatchHandler", Description: "命令正则匹配", Configurable: true},
	models.RuleNoUse:    {Name: "LongTimeNoUseHandler", Description: "长期未使用"},
	models.RuleJobTrans: {Name: "JobTransferHandler", Description: "岗位变更信息"},
}

// Templates lists the rule atom families in declaration order. Only REGEX
// atoms take user supplied patterns.
func Templates() []Template {
	out := make([]Template, 0, len(models.RuleTypes))
	for _, t := range models.RuleTypes {
		tpl := templates[t]
		tpl.Type = t
		out = append(out, tpl)
	}
	return out
}
