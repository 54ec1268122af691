package controller

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/devsapp/serverless-aml-controller/pkg/config"
	"github.com/devsapp/serverless-aml-controller/pkg/models"
)

const (
	filterDelimiters = `'"()`
	// tag query is a comma separated list of name=value pairs
	tagDelimiters = filterDelimiters + ",="
)

// checkFilterValue values are inserted unquoted into the filter grammar,
// reject anything that could end the value early
func checkFilterValue(name, value string) error {
	return checkValue(name, value, filterDelimiters)
}

func checkTagValue(name, value string) error {
	return checkValue(name, value, tagDelimiters)
}

func checkValue(name, value, delimiters string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidFilterValue, name)
	}
	if strings.IndexFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(delimiters, r)
	}) >= 0 {
		return fmt.Errorf("%w: %s=%q", ErrInvalidFilterValue, name, value)
	}
	return nil
}

// BuildRunFilter runs:query filter of the kind in (user, subscription) scope.
// An empty id lists every run of the scope, otherwise the discriminating tag
// must equal id.
func BuildRunFilter(kind models.OperationKind, userId, subscriptionId, id string) (string, error) {
	d, err := descriptorOf(kind)
	if err != nil {
		return "", err
	}
	return buildRunFilter(d, userId, subscriptionId, id)
}

func buildRunFilter(d descriptor, userId, subscriptionId, id string) (string, error) {
	clauses := [][2]string{
		{fieldUserId, userId},
		{fieldSubscriptionId, subscriptionId},
	}
	if id != "" {
		clauses = append(clauses, [2]string{d.idTag, id})
	}
	var b strings.Builder
	fmt.Fprintf(&b, "runType eq %s and tags/operationType eq %s", config.RUN_TYPE_PIPELINE, d.kind)
	for _, c := range clauses {
		if err := checkFilterValue(c[0], c[1]); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, " and tags/%s eq %s", c[0], c[1])
	}
	return b.String(), nil
}

// buildTagQuery query string of model management listings, name narrows it
// to one model or service
func buildTagQuery(scope *models.Scope, name string) (string, error) {
	tags := [][2]string{
		{fieldUserId, scope.Subscription.UserId},
		{fieldProductName, scope.Product.ProductName},
		{fieldDeploymentName, scope.Deployment.DeploymentName},
		{fieldSubscriptionId, scope.Subscription.SubscriptionId},
	}
	pairs := make([]string, 0, len(tags))
	for _, t := range tags {
		if err := checkTagValue(t[0], t[1]); err != nil {
			return "", err
		}
		pairs = append(pairs, t[0]+"="+t[1])
	}
	v := url.Values{}
	v.Set("tags", strings.Join(pairs, ","))
	if name != "" {
		if err := checkTagValue("name", name); err != nil {
			return "", err
		}
		v.Set("name", name)
	}
	return v.Encode(), nil
}
