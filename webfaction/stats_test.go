package webfaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diskUsageResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><struct>
<member><name>home_directories</name><value><array><data>
<value><struct>
<member><name>name</name><value><string>demo</string></value></member>
<member><name>size</name><value><string>1.2GB</string></value></member>
</struct></value>
</data></array></value></member>
<member><name>mailboxes</name><value><array><data>
<value><struct>
<member><name>name</name><value><string>support</string></value></member>
<member><name>size</name><value><string>300MB</string></value></member>
</struct></value>
</data></array></value></member>
<member><name>mysql_databases</name><value><array><data>
<value><struct>
<member><name>name</name><value><string>demo_blog</string></value></member>
<member><name>size</name><value><string>80MB</string></value></member>
</struct></value>
</data></array></value></member>
<member><name>postgresql_databases</name><value><array><data></data></array></value></member>
<member><name>total</name><value><string>1.6GB</string></value></member>
<member><name>quota</name><value><string>100GB</string></value></member>
<member><name>percentage</name><value><string>2</string></value></member>
</struct></value></param></params></methodResponse>`

const bandwidthUsageResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><struct>
<member><name>daily</name><value><struct>
<member><name>2026-08-29</name><value><struct>
<member><name>demo.example.com</name><value><double>1048576</double></value></member>
<member><name>blog.example.com</name><value><double>2097152</double></value></member>
</struct></value></member>
</struct></value></member>
<member><name>monthly</name><value><struct>
<member><name>2026-08</name><value><struct>
<member><name>demo.example.com</name><value><double>33554432</double></value></member>
</struct></value></member>
</struct></value></member>
</struct></value></param></params></methodResponse>`

const listAppsResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><struct>
<member><name>id</name><value><int>31</int></value></member>
<member><name>name</name><value><string>blog</string></value></member>
<member><name>type</name><value><string>wordpress</string></value></member>
<member><name>autostart</name><value><boolean>0</boolean></value></member>
<member><name>port_open</name><value><boolean>0</boolean></value></member>
<member><name>extra_info</name><value><string></string></value></member>
<member><name>machine</name><value><string>Web308</string></value></member>
</struct></value>
<value><struct>
<member><name>id</name><value><int>32</int></value></member>
<member><name>name</name><value><string>api</string></value></member>
<member><name>type</name><value><string>custom_app_with_port</string></value></member>
<member><name>autostart</name><value><boolean>1</boolean></value></member>
<member><name>port_open</name><value><boolean>1</boolean></value></member>
<member><name>extra_info</name><value><string>port 23422</string></value></member>
<member><name>machine</name><value><string>Web308</string></value></member>
</struct></value>
</data></array></value></param></params></methodResponse>`

func TestListDiskUsage(t *testing.T) {
	t.Run("decodes the usage report", func(t *testing.T) {
		client, ts := newTestClient(t, diskUsageResponse)

		usage, err := client.ListDiskUsage(context.Background())
		require.NoError(t, err)

		require.Len(t, usage.HomeDirectories, 1)
		assert.Equal(t, "demo", usage.HomeDirectories[0].Name)
		assert.Equal(t, "1.2GB", usage.HomeDirectories[0].Size)

		require.Len(t, usage.Mailboxes, 1)
		assert.Equal(t, "support", usage.Mailboxes[0].Name)

		require.Len(t, usage.MySQLDatabases, 1)
		assert.Empty(t, usage.PostgreSQLDatabases)

		assert.Equal(t, "1.6GB", usage.Total)
		assert.Equal(t, "100GB", usage.Quota)
		assert.Equal(t, "2", usage.Percentage)

		requests := ts.requests()
		require.Len(t, requests, 2)
		assert.Contains(t, requests[1], "<methodName>list_disk_usage</methodName>")
		assert.Contains(t, requests[1], "sess-1")
	})

	t.Run("remote fault", func(t *testing.T) {
		client, _ := newTestClient(t, faultResponse)

		usage, err := client.ListDiskUsage(context.Background())
		assert.Nil(t, usage)

		var callErr *CallError
		require.ErrorAs(t, err, &callErr)
		assert.Equal(t, "list_disk_usage", callErr.Method)
	})
}

func TestListBandwidthUsage(t *testing.T) {
	t.Run("decodes daily and monthly periods", func(t *testing.T) {
		client, ts := newTestClient(t, bandwidthUsageResponse)

		usage, err := client.ListBandwidthUsage(context.Background())
		require.NoError(t, err)

		require.Contains(t, usage.Daily, "2026-08-29")
		assert.Equal(t, float64(1048576), usage.Daily["2026-08-29"]["demo.example.com"])
		assert.Equal(t, float64(2097152), usage.Daily["2026-08-29"]["blog.example.com"])

		require.Contains(t, usage.Monthly, "2026-08")
		assert.Equal(t, float64(33554432), usage.Monthly["2026-08"]["demo.example.com"])

		assert.Contains(t, ts.requests()[1], "<methodName>list_bandwidth_usage</methodName>")
	})

	t.Run("remote fault", func(t *testing.T) {
		client, _ := newTestClient(t, faultResponse)

		usage, err := client.ListBandwidthUsage(context.Background())
		assert.Nil(t, usage)
		assert.Error(t, err)
	})
}

func TestListApps(t *testing.T) {
	client, ts := newTestClient(t, listAppsResponse)

	apps, err := client.ListApps(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 2)

	assert.Equal(t, "blog", apps[0].Name)
	assert.Equal(t, "wordpress", apps[0].Type)
	assert.False(t, apps[0].PortOpen)

	assert.Equal(t, "api", apps[1].Name)
	assert.True(t, apps[1].Autostart)
	assert.True(t, apps[1].PortOpen)
	assert.Equal(t, "port 23422", apps[1].ExtraInfo)

	assert.Contains(t, ts.requests()[1], "<methodName>list_apps</methodName>")
}
